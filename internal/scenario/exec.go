package scenario

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/twbaty/winix/internal/harness"
)

const dirPlaceholder = "{dir}"

// Run executes one scenario: acquires a scratch directory, seeds
// fixtures, applies env overrides, then runs each step and folds its
// expectations into the context's counters. Harness-level failures
// (spawn errors, unwritable fixtures) record a synthetic failing
// assertion and abort the remaining steps.
func Run(ctx context.Context, c *harness.Context, runner *harness.Runner, shell *harness.ShellRunner, scen *Scenario) {
	dir, release, err := harness.TempDir()
	if err != nil {
		c.Fail(scen.Name+": create temp directory", err.Error())
		return
	}
	defer release()

	for _, f := range scen.Fixtures {
		path := filepath.Join(dir, f.Path)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			c.Fail(scen.Name+": fixture dir "+f.Path, err.Error())
			return
		}
		if err := os.WriteFile(path, []byte(f.Contents), 0o644); err != nil {
			c.Fail(scen.Name+": fixture "+f.Path, err.Error())
			return
		}
	}

	for key, value := range scen.Env {
		restore := harness.SetEnv(key, value)
		defer restore()
	}

	for i, step := range scen.Steps {
		runStep(ctx, c, runner, shell, scen, dir, i, step)
	}
}

func runStep(ctx context.Context, c *harness.Context, runner *harness.Runner, shell *harness.ShellRunner, scen *Scenario, dir string, index int, step Step) {
	label := func(what string) string {
		return fmt.Sprintf("%s step %d %s", scen.Name, index+1, what)
	}

	var (
		stdout string
		stderr string
		exit   int
	)
	if len(step.Shell) > 0 {
		commands := make([]string, len(step.Shell))
		for i, cmd := range step.Shell {
			commands[i] = substitute(cmd, dir)
		}
		tr, err := shell.RunScript(ctx, dir, commands...)
		if err != nil {
			c.Fail(label("shell session"), err.Error())
			return
		}
		stdout = tr.Output
		exit = tr.ExitStatus
	} else {
		args := make([]string, len(step.Args))
		for i, arg := range step.Args {
			args[i] = substitute(arg, dir)
		}
		res, err := runner.Run(ctx, harness.Invocation{
			Name:  step.Run,
			Args:  args,
			Stdin: substitute(step.Stdin, dir),
			Dir:   dir,
		})
		if err != nil {
			c.Fail(label(step.Run), err.Error())
			return
		}
		stdout = res.Stdout
		stderr = res.Stderr
		exit = res.ExitStatus
	}

	expect := step.Expect
	if expect == nil {
		c.Check(label("runs"), true, "")
		return
	}

	if expect.Exit != nil {
		c.ExpectExit(label("exit status"), exit, *expect.Exit)
	}
	if expect.StdoutEq != nil {
		c.ExpectEq(label("stdout"), stdout, substitute(*expect.StdoutEq, dir))
	}
	if expect.StdoutContains != "" {
		c.ExpectContains(label("stdout contains"), stdout, substitute(expect.StdoutContains, dir))
	}
	if expect.StdoutNotContains != "" {
		c.ExpectNotContains(label("stdout not contains"), stdout, substitute(expect.StdoutNotContains, dir))
	}
	if expect.StderrContains != "" {
		c.ExpectContains(label("stderr contains"), stderr, substitute(expect.StderrContains, dir))
	}
	for _, rel := range expect.FilesExist {
		_, err := os.Stat(filepath.Join(dir, rel))
		c.Check(label("file exists: "+rel), err == nil, "")
	}
}

func substitute(s, dir string) string {
	return strings.ReplaceAll(s, dirPlaceholder, dir)
}
