package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

const watchDebounce = 500 * time.Millisecond

// runWatch runs the suite once, then re-runs it whenever executables
// in the build directory change. A short debounce coalesces the burst
// of events a rebuild produces. The exit code on interrupt reflects
// the most recent run.
func runWatch(cmd *cobra.Command, opts *Options) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	cmd.SetContext(ctx)

	buildDir, err := filepath.Abs(opts.BuildDir)
	if err != nil {
		return WrapExitError(ExitCommandError, "resolving build directory", err)
	}
	if _, err := os.Stat(buildDir); err != nil {
		return WrapExitError(ExitCommandError, fmt.Sprintf("build directory not found: %s", opts.BuildDir), err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return WrapExitError(ExitCommandError, "starting watcher", err)
	}
	defer watcher.Close()

	if err := watcher.Add(buildDir); err != nil {
		return WrapExitError(ExitCommandError, "watching build directory", err)
	}

	lastErr := runOnce(cmd, opts)
	if isCommandError(lastErr) {
		return lastErr
	}

	debounce := time.NewTimer(watchDebounce)
	if !debounce.Stop() {
		<-debounce.C
	}
	defer debounce.Stop()

	pending := false
	for {
		select {
		case <-ctx.Done():
			return lastErr

		case event, ok := <-watcher.Events:
			if !ok {
				return lastErr
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			debounce.Reset(watchDebounce)
			pending = true

		case err, ok := <-watcher.Errors:
			if !ok {
				return lastErr
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: watch: %v\n", err)

		case <-debounce.C:
			if !pending {
				continue
			}
			pending = false
			fmt.Fprintf(cmd.ErrOrStderr(), "build directory changed, re-running\n")
			lastErr = runOnce(cmd, opts)
			if isCommandError(lastErr) {
				return lastErr
			}
		}
	}
}

func isCommandError(err error) bool {
	var exitErr *ExitError
	return errors.As(err, &exitErr) && exitErr.Code == ExitCommandError
}
