package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/twbaty/winix/internal/harness"
)

// Options holds the flags for the conformance run.
type Options struct {
	BuildDir     string
	Verbose      bool
	Filter       string
	Timeout      time.Duration
	Format       string // "text" | "json"
	ScenariosDir string
	JournalPath  string
	Watch        bool
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the conformance harness.
func NewRootCommand() *cobra.Command {
	opts := &Options{}

	cmd := &cobra.Command{
		Use:   "winix-conform",
		Short: "Conformance harness for the Winix toolkit",
		Long: `Run black-box conformance checks against a directory of built
Winix executables. Each catalog section spawns the target tools,
captures their output, and checks exit statuses and output shape.

Exit codes:
  0 - all checks passed
  1 - one or more checks failed
  2 - command error (missing build directory, bad flags)

Examples:
  winix-conform --build-dir ./build
  winix-conform --filter "grep*" -v
  winix-conform --scenarios ./scenarios --format json
  winix-conform --watch --journal runs.db`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Watch {
				return runWatch(cmd, opts)
			}
			return runOnce(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.BuildDir, "build-dir", "build", "directory containing the built Winix executables")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "print passing checks as well as failures")
	cmd.Flags().StringVar(&opts.Filter, "filter", "", "run only sections whose name matches this glob pattern")
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", harness.DefaultTimeout, "per-invocation timeout")
	cmd.Flags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.Flags().StringVar(&opts.ScenariosDir, "scenarios", "", "directory of YAML scenario files to run after the catalog")
	cmd.Flags().StringVar(&opts.JournalPath, "journal", "", "SQLite file recording run history")
	cmd.Flags().BoolVar(&opts.Watch, "watch", false, "re-run when executables in the build directory change")

	return cmd
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
