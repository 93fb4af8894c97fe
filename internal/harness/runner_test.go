//go:build unix

package harness

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeScript installs a shell script under name in dir so the runner
// can treat it as a built target executable.
func writeScript(t *testing.T, dir, name, body string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755))
}

func newTestRunner(dir string) *Runner {
	return &Runner{
		Resolver: BuildDirResolver{Dir: dir},
		Timeout:  5 * time.Second,
	}
}

func TestRunner_CapturesStreamsAndExitStatus(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "mixed", "echo out\necho err >&2\nexit 3\n")

	res, err := newTestRunner(dir).Run(context.Background(), Invocation{Name: "mixed"})
	require.NoError(t, err)
	assert.Equal(t, "out\n", res.Stdout)
	assert.Equal(t, "err\n", res.Stderr)
	assert.Equal(t, 3, res.ExitStatus)
}

func TestRunner_NonzeroExitIsNotAnError(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "failer", "exit 1\n")

	res, err := newTestRunner(dir).Run(context.Background(), Invocation{Name: "failer"})
	require.NoError(t, err)
	assert.Equal(t, 1, res.ExitStatus)
}

func TestRunner_PassesStdinAndArgs(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "echoback", "echo \"$1\"\ncat\n")

	res, err := newTestRunner(dir).Run(context.Background(), Invocation{
		Name:  "echoback",
		Args:  []string{"arg1"},
		Stdin: "from stdin\n",
	})
	require.NoError(t, err)
	assert.Equal(t, "arg1\nfrom stdin\n", res.Stdout)
}

func TestRunner_NormalizesCRLF(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "crlf", "printf 'a\\r\\nb\\r\\n'\n")

	res, err := newTestRunner(dir).Run(context.Background(), Invocation{Name: "crlf"})
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", res.Stdout)
}

func TestRunner_ReplacesIllFormedOutput(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "garbage", "printf 'ok\\377ok'\n")

	res, err := newTestRunner(dir).Run(context.Background(), Invocation{Name: "garbage"})
	require.NoError(t, err)
	assert.Equal(t, "ok\ufffdok", res.Stdout)
}

func TestRunner_TimeoutTerminatesProcess(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "slow", "sleep 5\n")

	start := time.Now()
	res, err := newTestRunner(dir).Run(context.Background(), Invocation{
		Name:    "slow",
		Timeout: 100 * time.Millisecond,
	})
	assert.ErrorIs(t, err, ErrTimedOut)
	assert.Equal(t, -1, res.ExitStatus)
	assert.Less(t, time.Since(start), 3*time.Second)
}

func TestRunner_MissingExecutable(t *testing.T) {
	dir := t.TempDir()

	res, err := newTestRunner(dir).Run(context.Background(), Invocation{Name: "nosuchtool"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to start")
	assert.Equal(t, -1, res.ExitStatus)
}

func TestRunner_WorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	work := t.TempDir()
	writeScript(t, dir, "whereami", "pwd\n")

	res, err := newTestRunner(dir).Run(context.Background(), Invocation{Name: "whereami", Dir: work})
	require.NoError(t, err)

	// macOS puts temp dirs behind a /private symlink; compare resolved paths.
	want, err := filepath.EvalSymlinks(work)
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(res.Stdout[:len(res.Stdout)-1])
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestShellRunner_AppendsExitAndNormalizes(t *testing.T) {
	dir := t.TempDir()
	// A stand-in shell that echoes its script back with a banner and
	// prompt noise around it.
	writeScript(t, dir, DefaultShellName,
		"echo 'Winix Shell v1.0'\nwhile read -r line; do echo \"[Winix] C:\\> $line\"; echo \"$line\"; done\n")

	shell := &ShellRunner{Runner: newTestRunner(dir)}
	tr, err := shell.RunScript(context.Background(), dir, "echo hi")
	require.NoError(t, err)
	assert.Equal(t, "echo hi\nexit", tr.Output)
	assert.Equal(t, 0, tr.ExitStatus)
}

func TestBuildDirResolver_JoinsDirNameSuffix(t *testing.T) {
	r := BuildDirResolver{Dir: filepath.Join("out", "bin"), Suffix: ".exe"}
	assert.Equal(t, filepath.Join("out", "bin", "cat.exe"), r.Resolve("cat"))

	bare := BuildDirResolver{Dir: "build"}
	assert.Equal(t, filepath.Join("build", "grep"), bare.Resolve("grep"))
}
