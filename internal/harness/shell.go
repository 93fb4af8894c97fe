package harness

import (
	"context"
	"strings"
)

// DefaultShellName is the interactive shell executable under test.
const DefaultShellName = "winix"

// exitCommand terminates an interactive session deterministically.
// The shell runner always appends it; a script that relies on the
// shell waiting for further input is a caller error, not a supported
// mode.
const exitCommand = "exit"

// ShellRunner drives one interactive shell session per call, feeding a
// line-oriented script through standard input and normalizing the
// captured transcript.
type ShellRunner struct {
	Runner *Runner

	// Shell overrides the executable name; empty means
	// DefaultShellName.
	Shell string
}

// RunScript joins commands with line breaks, appends the exit command,
// runs the shell in dir and returns the normalized transcript. The
// timeout behavior is the Runner's; the session can never block
// indefinitely.
func (s *ShellRunner) RunScript(ctx context.Context, dir string, commands ...string) (Transcript, error) {
	name := s.Shell
	if name == "" {
		name = DefaultShellName
	}

	script := strings.Join(commands, "\n") + "\n" + exitCommand + "\n"
	res, err := s.Runner.Run(ctx, Invocation{Name: name, Stdin: script, Dir: dir})
	if err != nil {
		return Transcript{ExitStatus: -1}, err
	}
	return Transcript{Output: Normalize(res.Stdout), ExitStatus: res.ExitStatus}, nil
}
