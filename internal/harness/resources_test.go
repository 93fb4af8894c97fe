package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTempDir_RemovedOnRelease(t *testing.T) {
	dir, release, err := TempDir()
	require.NoError(t, err)
	require.DirExists(t, dir)

	// Contents go too, even ones written after acquisition.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "leftover.txt"), []byte("x"), 0o644))

	release()
	assert.NoDirExists(t, dir)
}

func TestTempDir_UniquePerAcquisition(t *testing.T) {
	d1, r1, err := TempDir()
	require.NoError(t, err)
	defer r1()

	d2, r2, err := TempDir()
	require.NoError(t, err)
	defer r2()

	assert.NotEqual(t, d1, d2)
}

func TestSetEnv_RestoresPreviousValue(t *testing.T) {
	const key = "WINIX_TEST_RESTORE"
	require.NoError(t, os.Setenv(key, "before"))
	defer os.Unsetenv(key)

	restore := SetEnv(key, "during")
	assert.Equal(t, "during", os.Getenv(key))

	restore()
	assert.Equal(t, "before", os.Getenv(key))
}

func TestSetEnv_UnsetsPreviouslyAbsentVariable(t *testing.T) {
	const key = "WINIX_TEST_ABSENT"
	require.NoError(t, os.Unsetenv(key))

	restore := SetEnv(key, "during")
	assert.Equal(t, "during", os.Getenv(key))

	restore()
	_, present := os.LookupEnv(key)
	assert.False(t, present)
}
