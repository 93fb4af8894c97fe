package catalog

import (
	"strings"

	"github.com/twbaty/winix/internal/harness"
)

// caseSensitivity exercises the WINIX_CASE toggle, which flips the default
// comparison mode of the text tools between case-insensitive (off) and
// case-sensitive (on).
func caseSensitivity(e *Env) {
	restore := harness.SetEnv("WINIX_CASE", "off")
	defer restore()

	res := e.RunWith(harness.Invocation{
		Name:  "grep",
		Args:  []string{"hello"},
		Stdin: "Hello World\nbye world\n",
	})
	e.C.ExpectExit("grep WINIX_CASE=off exits 0 on match", res.ExitStatus, 0)
	e.C.ExpectContains("grep WINIX_CASE=off matches case-insensitively", res.Stdout, "Hello")

	reset := harness.SetEnv("WINIX_CASE", "on")
	defer reset()

	res = e.RunWith(harness.Invocation{
		Name:  "grep",
		Args:  []string{"hello"},
		Stdin: "Hello World\nbye world\n",
	})
	e.C.ExpectExit("grep WINIX_CASE=on exits 1 (no match)", res.ExitStatus, 1)
	e.C.Check("grep WINIX_CASE=on does not match Hello",
		!strings.Contains(res.Stdout, "Hello"), res.Stdout)

	// Explicit -i wins over the env toggle.
	res = e.RunWith(harness.Invocation{
		Name:  "grep",
		Args:  []string{"-i", "hello"},
		Stdin: "Hello World\n",
	})
	e.C.ExpectExit("grep -i overrides WINIX_CASE=on", res.ExitStatus, 0)
	e.C.ExpectContains("grep -i matches case-insensitively", res.Stdout, "Hello")

	// Capital letters sort before lowercase in ASCII, so case-sensitive
	// order puts Banana first while folded order puts apple first.
	off := harness.SetEnv("WINIX_CASE", "off")
	res = e.RunWith(harness.Invocation{
		Name:  "sort",
		Stdin: "cherry\nBanana\napple\n",
	})
	lines := splitLines(res.Stdout)
	if len(lines) >= 2 {
		e.C.ExpectEq("sort WINIX_CASE=off first line is apple", lines[0], "apple")
		e.C.ExpectEq("sort WINIX_CASE=off second line is Banana", lines[1], "Banana")
	} else {
		e.C.Fail("sort WINIX_CASE=off output", res.Stdout)
	}
	off()

	on := harness.SetEnv("WINIX_CASE", "on")
	res = e.RunWith(harness.Invocation{
		Name:  "sort",
		Stdin: "cherry\nBanana\napple\n",
	})
	lines = splitLines(res.Stdout)
	if len(lines) >= 1 {
		e.C.ExpectEq("sort WINIX_CASE=on first line is Banana", lines[0], "Banana")
	} else {
		e.C.Fail("sort WINIX_CASE=on output", res.Stdout)
	}
	on()
}
