package harness

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// DefaultTimeout bounds a single process invocation unless the caller
// overrides it. Matches the toolkit's documented worst case with room
// to spare; deliberately slow targets (sleep) pass a longer value.
const DefaultTimeout = 15 * time.Second

// ErrTimedOut reports that a target process exceeded its timeout and
// was terminated by the harness.
var ErrTimedOut = errors.New("timed out")

// Invocation describes one process run.
type Invocation struct {
	// Name is the target executable name, resolved through the
	// runner's Resolver.
	Name string

	// Args are passed verbatim; the harness performs no expansion.
	Args []string

	// Stdin, when non-empty, is supplied to the process's standard
	// input. An absent Stdin leaves the process with empty input.
	Stdin string

	// Dir is the working directory for the process ("" inherits the
	// harness's own).
	Dir string

	// Timeout overrides the runner default when positive.
	Timeout time.Duration
}

// Runner spawns target executables and captures their observable
// output. It has no side effects of its own; filesystem changes are
// the invoked program's business.
type Runner struct {
	Resolver Resolver
	Timeout  time.Duration
}

// Run executes one invocation. It blocks until the process exits or
// the timeout elapses, whichever comes first. On timeout the process
// is terminated and Run returns a sentinel RunResult together with an
// error wrapping ErrTimedOut; spawn failures behave the same way. A
// nonzero exit status of the target is not an error.
func (r *Runner) Run(ctx context.Context, inv Invocation) (RunResult, error) {
	timeout := inv.Timeout
	if timeout <= 0 {
		timeout = r.Timeout
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, r.Resolver.Resolve(inv.Name), inv.Args...)
	cmd.Dir = inv.Dir
	if inv.Stdin != "" {
		cmd.Stdin = strings.NewReader(inv.Stdin)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if runCtx.Err() == context.DeadlineExceeded {
		return RunResult{ExitStatus: -1}, fmt.Errorf("%s %w after %s", inv.Name, ErrTimedOut, timeout)
	}
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return RunResult{ExitStatus: -1}, fmt.Errorf("failed to start %s: %w", inv.Name, err)
		}
	}

	return RunResult{
		Stdout:     decodeOutput(stdout.Bytes()),
		Stderr:     decodeOutput(stderr.Bytes()),
		ExitStatus: cmd.ProcessState.ExitCode(),
	}, nil
}

// decodeOutput converts raw process output to text. Ill-formed UTF-8
// is replaced with U+FFFD rather than surfaced as an error, and
// Windows line endings are normalized so assertions are
// platform-independent.
func decodeOutput(raw []byte) string {
	text, _, err := transform.String(runes.ReplaceIllFormed(), string(raw))
	if err != nil {
		text = string(raw)
	}
	return strings.ReplaceAll(text, "\r\n", "\n")
}
