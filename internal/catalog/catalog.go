// Package catalog holds the ordered conformance scenario catalog for
// the Winix toolkit. Each section exercises one target executable's
// argument surface and documented edge cases. Sections are
// independent: order matters only for report readability.
package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/twbaty/winix/internal/harness"
)

// Section is one named group of conformance checks.
type Section struct {
	Name string
	Run  func(*Env)
}

// Env bundles everything a section needs: the run context for
// assertions and the runners that drive the target executables.
// Helper methods record harness-level failures (spawn errors,
// timeouts) as synthetic failing assertions and return sentinel
// results so sections fail safely instead of aborting.
type Env struct {
	C      *harness.Context
	Runner *harness.Runner
	Shell  *harness.ShellRunner

	ctx context.Context
}

// NewEnv creates a catalog environment.
func NewEnv(ctx context.Context, c *harness.Context, runner *harness.Runner, shell *harness.ShellRunner) *Env {
	return &Env{C: c, Runner: runner, Shell: shell, ctx: ctx}
}

// Run invokes a target executable with arguments only.
func (e *Env) Run(name string, args ...string) harness.RunResult {
	return e.RunWith(harness.Invocation{Name: name, Args: args})
}

// RunWith invokes a target executable with full invocation control
// (stdin, working directory, timeout override).
func (e *Env) RunWith(inv harness.Invocation) harness.RunResult {
	res, err := e.Runner.Run(e.ctx, inv)
	if err != nil {
		e.C.Fail(fmt.Sprintf("%s: %v", inv.Name, err), "")
	}
	return res
}

// RunShell drives one interactive shell session in dir.
func (e *Env) RunShell(dir string, commands ...string) harness.Transcript {
	tr, err := e.Shell.RunScript(e.ctx, dir, commands...)
	if err != nil {
		e.C.Fail(fmt.Sprintf("shell session: %v", err), "")
	}
	return tr
}

// TempDir acquires a scoped scratch directory, recording a harness
// failure when acquisition fails. The release func never fails.
func (e *Env) TempDir() (string, func()) {
	dir, release, err := harness.TempDir()
	if err != nil {
		e.C.Fail("create temp directory", err.Error())
		return "", func() {}
	}
	return dir, release
}

// WriteFile writes a fixture file, recording a harness failure on
// error.
func (e *Env) WriteFile(path, contents string) bool {
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		e.C.Fail(fmt.Sprintf("write fixture %s", filepath.Base(path)), err.Error())
		return false
	}
	return true
}

// All returns the catalog in report order.
func All() []Section {
	return []Section{
		{"true / false", trueFalse},
		{"echo", echo},
		{"pwd", pwd},
		{"cat", cat},
		{"head / tail", headTail},
		{"wc", wc},
		{"sort", sortUtil},
		{"uniq", uniq},
		{"grep", grep},
		{"mkdir / rmdir / touch / ls", mkdirLs},
		{"cp", cp},
		{"mv", mv},
		{"rm", rm},
		{"stat", stat},
		{"basename / dirname", basenameDirname},
		{"which", which},
		{"ver", ver},
		{"uname", uname},
		{"uptime", uptime},
		{"whoami", whoami},
		{"date", date},
		{"sleep", sleepUtil},
		{"clear", clearUtil},
		{"df", df},
		{"du", du},
		{"ps", ps},
		{"printf", printfUtil},
		{"tee", tee},
		{"case sensitivity", caseSensitivity},
		{"glob", glob},
		{"nix", nix},
		{"cut", cut},
		{"tr", tr},
		{"find", find},
		{"diff", diff},
		{"sed", sed},
		{"xargs", xargs},
	}
}
