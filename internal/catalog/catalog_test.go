package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll_SectionsAreNamedAndRunnable(t *testing.T) {
	sections := All()
	require.NotEmpty(t, sections)

	seen := make(map[string]bool, len(sections))
	for _, section := range sections {
		assert.NotEmpty(t, section.Name)
		assert.NotNil(t, section.Run, "section %q has no run func", section.Name)
		assert.False(t, seen[section.Name], "duplicate section name %q", section.Name)
		seen[section.Name] = true
	}
}

func TestAll_CoversCoreUtilities(t *testing.T) {
	names := make(map[string]bool)
	for _, section := range All() {
		names[section.Name] = true
	}
	for _, want := range []string{"echo", "cat", "grep", "sed", "glob", "nix", "case sensitivity"} {
		assert.True(t, names[want], "missing section %q", want)
	}
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitLines("a\nb\n"))
	assert.Equal(t, []string{"one"}, splitLines("  one  \n"))
	assert.Nil(t, splitLines(""))
	assert.Nil(t, splitLines("  \n "))
}
