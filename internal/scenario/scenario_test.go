package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validScenario = `name: cat-roundtrip
description: "cat prints a seeded fixture"
fixtures:
  - path: hello.txt
    contents: "hello\n"
steps:
  - run: cat
    args: ["{dir}/hello.txt"]
    expect:
      exit: 0
      stdout_contains: hello
`

func TestLoad_ValidFile(t *testing.T) {
	path := writeScenario(t, t.TempDir(), "cat.yaml", validScenario)

	scen, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "cat-roundtrip", scen.Name)
	require.Len(t, scen.Fixtures, 1)
	assert.Equal(t, "hello.txt", scen.Fixtures[0].Path)
	require.Len(t, scen.Steps, 1)
	require.NotNil(t, scen.Steps[0].Expect)
	require.NotNil(t, scen.Steps[0].Expect.Exit)
	assert.Equal(t, 0, *scen.Steps[0].Expect.Exit)
	assert.Equal(t, "hello", scen.Steps[0].Expect.StdoutContains)
}

func TestLoad_RejectsUnknownField(t *testing.T) {
	content := `name: typo
description: "misspelled key"
steps:
  - run: cat
    argz: ["x"]
`
	path := writeScenario(t, t.TempDir(), "typo.yaml", content)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "argz")
}

func TestLoad_RejectsSchemaViolation(t *testing.T) {
	content := `name: badexit
description: "exit must be an int"
steps:
  - run: cat
    expect:
      exit: "zero"
`
	path := writeScenario(t, t.TempDir(), "badexit.yaml", content)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema violation")
}

func TestLoad_RejectsMissingSteps(t *testing.T) {
	content := `name: empty
description: "no steps"
steps: []
`
	path := writeScenario(t, t.TempDir(), "empty.yaml", content)

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_RejectsRunAndShellTogether(t *testing.T) {
	content := `name: both
description: "run and shell are mutually exclusive"
steps:
  - run: cat
    shell: ["echo hi"]
`
	path := writeScenario(t, t.TempDir(), "both.yaml", content)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one of run or shell")
}

func TestLoad_RejectsAbsoluteFixturePath(t *testing.T) {
	content := `name: escape
description: "fixtures must stay in the scratch dir"
fixtures:
  - path: /etc/owned
    contents: ""
steps:
  - run: cat
`
	path := writeScenario(t, t.TempDir(), "escape.yaml", content)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "relative")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadDir_SortedAndFiltered(t *testing.T) {
	dir := t.TempDir()
	writeScenario(t, dir, "b.yaml", `name: b
description: "second"
steps:
  - run: cat
`)
	writeScenario(t, dir, "a.yml", `name: a
description: "first"
steps:
  - run: cat
`)
	writeScenario(t, dir, "notes.txt", "not a scenario")

	scenarios, err := LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, scenarios, 2)
	assert.Equal(t, "a", scenarios[0].Name)
	assert.Equal(t, "b", scenarios[1].Name)
}

func TestLoadDir_PropagatesLoadError(t *testing.T) {
	dir := t.TempDir()
	writeScenario(t, dir, "bad.yaml", "name: [broken")

	_, err := LoadDir(dir)
	require.Error(t, err)
}

func TestSubstitute(t *testing.T) {
	assert.Equal(t, "/tmp/x/in.txt", substitute("{dir}/in.txt", "/tmp/x"))
	assert.Equal(t, "plain", substitute("plain", "/tmp/x"))
}
