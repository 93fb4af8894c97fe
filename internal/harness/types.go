package harness

// RunResult is the observable outcome of one process invocation.
// It is immutable once returned and owned by the calling scenario.
type RunResult struct {
	// Stdout is the decoded standard output with line endings
	// normalized to "\n".
	Stdout string

	// Stderr is the decoded standard error, normalized like Stdout.
	Stderr string

	// ExitStatus is the process exit code, or -1 when the process
	// could not be started or was terminated by the harness.
	ExitStatus int
}

// Transcript is the result of one interactive shell session after
// normalization: banner, prompt and blank lines are gone and escape
// sequences are stripped.
type Transcript struct {
	Output     string
	ExitStatus int
}

// SectionResult tallies one named section of the report.
type SectionResult struct {
	Name   string `json:"name"`
	Passed int    `json:"passed"`
	Failed int    `json:"failed"`
}
