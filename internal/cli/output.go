package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/twbaty/winix/internal/harness"
)

// Exit codes for the harness binary.
const (
	ExitSuccess      = 0 // all checks passed
	ExitFailure      = 1 // one or more checks failed
	ExitCommandError = 2 // command error (missing build dir, bad flags, broken scenario files)
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil and ExitFailure for non-ExitError errors.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// CLIResponse is the standard JSON envelope for machine-readable
// output.
type CLIResponse struct {
	Status string      `json:"status"` // "ok" or "error"
	Data   interface{} `json:"data,omitempty"`
	Error  *CLIError   `json:"error,omitempty"`
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RunReport is the data payload for one harness run.
type RunReport struct {
	RunID      string                  `json:"run_id"`
	BuildDir   string                  `json:"build_dir"`
	Passed     int                     `json:"passed"`
	Failed     int                     `json:"failed"`
	Total      int                     `json:"total"`
	DurationMS int64                   `json:"duration_ms"`
	Sections   []harness.SectionResult `json:"sections"`
}

// writeJSON encodes one response envelope to w.
func writeJSON(w io.Writer, resp CLIResponse) error {
	return json.NewEncoder(w).Encode(resp)
}
