package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/twbaty/winix/internal/catalog"
	"github.com/twbaty/winix/internal/harness"
	"github.com/twbaty/winix/internal/journal"
	"github.com/twbaty/winix/internal/scenario"
)

// runOnce executes the full suite a single time and reports.
func runOnce(cmd *cobra.Command, opts *Options) error {
	buildDir, err := filepath.Abs(opts.BuildDir)
	if err != nil {
		return WrapExitError(ExitCommandError, "resolving build directory", err)
	}
	info, err := os.Stat(buildDir)
	if err != nil {
		return WrapExitError(ExitCommandError, fmt.Sprintf("build directory not found: %s", opts.BuildDir), err)
	}
	if !info.IsDir() {
		return NewExitError(ExitCommandError, fmt.Sprintf("not a directory: %s", opts.BuildDir))
	}

	// Scenario files are loaded up front so a broken file is a command
	// error, not a mid-run failure.
	var scenarios []*scenario.Scenario
	if opts.ScenariosDir != "" {
		scenarios, err = scenario.LoadDir(opts.ScenariosDir)
		if err != nil {
			return WrapExitError(ExitCommandError, "loading scenarios", err)
		}
	}

	sections, err := selectSections(opts.Filter)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid filter pattern", err)
	}

	// Reports go to stdout in text mode. In JSON mode the envelope
	// owns stdout, so progress output moves to stderr.
	reportOut := io.Writer(cmd.OutOrStdout())
	if opts.Format == "json" {
		reportOut = cmd.ErrOrStderr()
	}

	started := time.Now()
	c := harness.NewContext(reportOut, opts.Verbose)
	runner := &harness.Runner{
		Resolver: harness.NewBuildDirResolver(buildDir),
		Timeout:  opts.Timeout,
	}
	shell := &harness.ShellRunner{Runner: runner}
	env := catalog.NewEnv(cmd.Context(), c, runner, shell)

	for _, section := range sections {
		c.Section(section.Name)
		section.Run(env)
	}
	for _, scen := range scenarios {
		c.Section("scenario: " + scen.Name)
		scenario.Run(cmd.Context(), c, runner, shell, scen)
	}

	c.Summary()

	report := RunReport{
		RunID:      journal.NewRunID(),
		BuildDir:   buildDir,
		Passed:     c.Passed(),
		Failed:     c.Failed(),
		Total:      c.Total(),
		DurationMS: time.Since(started).Milliseconds(),
		Sections:   c.Sections(),
	}

	if opts.JournalPath != "" {
		if err := recordRun(cmd, opts.JournalPath, started, report); err != nil {
			// History is best-effort; a broken journal must not mask
			// the conformance verdict.
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: journal: %v\n", err)
		}
	}

	if opts.Format == "json" {
		if err := writeJSON(cmd.OutOrStdout(), CLIResponse{Status: "ok", Data: report}); err != nil {
			return WrapExitError(ExitCommandError, "encoding report", err)
		}
	}

	if c.Failed() > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d checks failed", c.Failed(), c.Total()))
	}
	return nil
}

// selectSections returns the catalog sections matching the filter
// glob, or all of them when the filter is empty.
func selectSections(filter string) ([]catalog.Section, error) {
	all := catalog.All()
	if filter == "" {
		return all, nil
	}

	var selected []catalog.Section
	for _, section := range all {
		ok, err := filepath.Match(filter, section.Name)
		if err != nil {
			return nil, err
		}
		if ok {
			selected = append(selected, section)
		}
	}
	return selected, nil
}

func recordRun(cmd *cobra.Command, path string, started time.Time, report RunReport) error {
	j, err := journal.Open(path)
	if err != nil {
		return err
	}
	defer j.Close()

	return j.Record(cmd.Context(), journal.RunRecord{
		ID:         report.RunID,
		StartedAt:  started,
		FinishedAt: time.Now(),
		BuildDir:   report.BuildDir,
		Passed:     report.Passed,
		Failed:     report.Failed,
		Sections:   report.Sections,
	})
}
