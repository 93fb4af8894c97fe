package harness

import (
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds the report styling. Styles are created from a renderer
// bound to the output writer, so piping the report into a file or a
// test buffer yields plain text.
type Styles struct {
	Section lipgloss.Style
	Pass    lipgloss.Style
	Fail    lipgloss.Style
}

// DefaultStyles returns the report styling for the given renderer.
func DefaultStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Section: r.NewStyle().Bold(true),
		Pass:    r.NewStyle().Foreground(lipgloss.Color("2")),
		Fail:    r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}
}

// Context is the explicit state of one harness run: counters, the
// display-only current section, and the reporting policy. Scenarios
// receive it instead of mutating package globals, which keeps the
// harness itself testable with an injected writer.
//
// Context is not safe for concurrent use; execution is strictly
// sequential by design.
type Context struct {
	verbose  bool
	out      io.Writer
	styles   Styles
	passed   int
	failed   int
	sections []SectionResult
}

// NewContext creates a run context reporting to out. When verbose is
// set, passing assertions are printed as well; failures always print.
func NewContext(out io.Writer, verbose bool) *Context {
	return &Context{
		verbose: verbose,
		out:     out,
		styles:  DefaultStyles(lipgloss.NewRenderer(out)),
	}
}

// Section prints a header and starts a new display grouping. It has no
// effect on the pass/fail counters.
func (c *Context) Section(name string) {
	c.sections = append(c.sections, SectionResult{Name: name})
	fmt.Fprintf(c.out, "\n%s\n%s\n", c.styles.Section.Render(name), strings.Repeat("-", len(name)))
}

// record folds one assertion outcome into the counters and prints it
// according to the verbosity policy.
func (c *Context) record(ok bool, label, detail string) bool {
	if len(c.sections) == 0 {
		c.sections = append(c.sections, SectionResult{Name: "(default)"})
	}
	current := &c.sections[len(c.sections)-1]

	if ok {
		c.passed++
		current.Passed++
		if c.verbose {
			fmt.Fprintf(c.out, "  %s %s\n", c.styles.Pass.Render("PASS:"), label)
		}
		return true
	}

	c.failed++
	current.Failed++
	fmt.Fprintf(c.out, "  %s %s\n", c.styles.Fail.Render("FAIL:"), label)
	if detail != "" {
		for _, line := range strings.Split(detail, "\n") {
			fmt.Fprintf(c.out, "        %s\n", line)
		}
	}
	return false
}

// Check records pass iff ok is true. The optional detail is printed
// with the failure diagnostic.
func (c *Context) Check(label string, ok bool, detail string) bool {
	return c.record(ok, label, detail)
}

// Fail records a synthetic failing assertion. Used for harness-level
// failures (spawn errors, timeouts) so they surface in the same
// report as behavioral mismatches without aborting the run.
func (c *Context) Fail(label, detail string) {
	c.record(false, label, detail)
}

// ExpectEq records pass iff got and want are structurally equal. The
// failure detail renders both values.
func (c *Context) ExpectEq(label string, got, want any) bool {
	return c.record(reflect.DeepEqual(got, want), label,
		fmt.Sprintf("expected %#v\ngot      %#v", want, got))
}

// ExpectExit records pass iff the exit codes match.
func (c *Context) ExpectExit(label string, got, want int) bool {
	return c.record(got == want, label,
		fmt.Sprintf("expected exit %d, got %d", want, got))
}

// ExpectContains records pass iff needle occurs in haystack.
func (c *Context) ExpectContains(label, haystack, needle string) bool {
	return c.record(strings.Contains(haystack, needle), label,
		fmt.Sprintf("expected %q in:\n%q", needle, haystack))
}

// ExpectNotContains records pass iff needle does not occur in haystack.
func (c *Context) ExpectNotContains(label, haystack, needle string) bool {
	return c.record(!strings.Contains(haystack, needle), label,
		fmt.Sprintf("expected %q NOT in:\n%q", needle, haystack))
}

// Passed returns the number of passing assertions so far.
func (c *Context) Passed() int { return c.passed }

// Failed returns the number of failing assertions so far.
func (c *Context) Failed() int { return c.failed }

// Total returns the number of assertion calls issued so far.
func (c *Context) Total() int { return c.passed + c.failed }

// Sections returns the per-section tallies in report order.
func (c *Context) Sections() []SectionResult {
	out := make([]SectionResult, len(c.sections))
	copy(out, c.sections)
	return out
}

// Summary prints the final pass/fail report.
func (c *Context) Summary() {
	rule := strings.Repeat("=", 40)
	fmt.Fprintf(c.out, "\n%s\n", rule)
	fmt.Fprintf(c.out, "  Results: %d/%d passed", c.passed, c.Total())
	if c.failed > 0 {
		fmt.Fprintf(c.out, "  (%d FAILED)\n", c.failed)
	} else {
		fmt.Fprintf(c.out, "  All tests passed\n")
	}
	fmt.Fprintf(c.out, "%s\n", rule)
}

// ExitCode returns the process exit status encoding the run verdict:
// 0 when every assertion passed, 1 otherwise.
func (c *Context) ExitCode() int {
	if c.failed > 0 {
		return 1
	}
	return 0
}
