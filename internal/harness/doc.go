// Package harness provides the conformance engine for the Winix toolkit.
//
// The harness treats every target executable as an opaque black box: it
// spawns the binary with arguments and optional standard input, captures
// standard output, standard error and the exit status, and folds typed
// assertions about that observable behavior into a run-wide verdict.
//
// # Engine pieces
//
//   - Runner: single process invocation with a per-call timeout,
//     lossy-but-total output decoding, and line-ending normalization.
//   - ShellRunner: drives the interactive winix shell by feeding a
//     line-oriented script (with a mandatory final exit command) through
//     standard input and normalizing the transcript.
//   - Normalize: strips terminal escape sequences and banner/prompt lines
//     from shell transcripts so assertions see semantic output only.
//   - Context: the explicit test-run state. Every assertion produces one
//     pass/fail record, printed according to the verbosity policy and
//     folded into the run counters. Failing assertions are data, never
//     control flow; the run always continues.
//   - TempDir / SetEnv: scoped fixtures. Acquisition pairs with a release
//     closure that runs unconditionally and suppresses cleanup errors.
//
// # Failure classes
//
// Harness-level failures (spawn errors, timeouts) are recorded as
// synthetic failing assertions with a descriptive label and sentinel
// output, so downstream assertions fail safely instead of hanging or
// aborting the run. Assertion failures record expected and actual values
// and are summarized at the end; the process exit status is the only
// signal calling automation needs to check.
package harness
