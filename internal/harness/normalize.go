package harness

import (
	"regexp"
	"strings"
)

// csiPattern matches the control sequences the shell emits for colors
// and cursor movement. The final-byte set is the one the toolkit
// actually uses; widening it would change conformance semantics.
var csiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[mGKHF]`)

// Marker substrings identifying harness-irrelevant transcript lines.
const (
	bannerMarker = "Winix Shell"
	promptMarker = "[Winix]"
)

// Normalize strips terminal escape sequences from a shell transcript
// and drops blank lines plus any line carrying the startup banner or
// an interactive prompt, so assertions operate on semantic output
// only. Relative order and content of the remaining lines are
// preserved. Normalize is pure and idempotent.
func Normalize(raw string) string {
	text := strings.ReplaceAll(raw, "\r\n", "\n")
	text = csiPattern.ReplaceAllString(text, "")

	var kept []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.Contains(line, bannerMarker) || strings.Contains(line, promptMarker) {
			continue
		}
		kept = append(kept, strings.TrimRight(line, " \t"))
	}
	return strings.Join(kept, "\n")
}
