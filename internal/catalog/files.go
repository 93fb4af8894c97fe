package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/twbaty/winix/internal/harness"
)

func cat(e *Env) {
	dir, release := e.TempDir()
	defer release()

	f := filepath.Join(dir, "a.txt")
	e.WriteFile(f, "line1\nline2\nline3\n")

	res := e.Run("cat", f)
	e.C.ExpectExit("cat exits 0", res.ExitStatus, 0)
	e.C.ExpectEq("cat basic read", res.Stdout, "line1\nline2\nline3\n")

	res = e.Run("cat", "-n", f)
	e.C.ExpectContains("cat -n adds line numbers", res.Stdout, "     1\tline1")
	e.C.ExpectContains("cat -n line 3", res.Stdout, "     3\tline3")

	res = e.Run("cat", filepath.Join(dir, "nonexistent.txt"))
	e.C.ExpectExit("cat nonexistent exits 1", res.ExitStatus, 1)
	e.C.ExpectContains("cat nonexistent prints error", res.Stderr, "cat:")
}

func headTail(e *Env) {
	dir, release := e.TempDir()
	defer release()

	var sb strings.Builder
	for i := 1; i <= 20; i++ {
		fmt.Fprintf(&sb, "%d\n", i)
	}
	f := filepath.Join(dir, "nums.txt")
	e.WriteFile(f, sb.String())

	res := e.Run("head", f)
	e.C.ExpectExit("head exits 0", res.ExitStatus, 0)
	lines := splitLines(res.Stdout)
	e.C.ExpectEq("head default 10 lines", len(lines), 10)
	if len(lines) > 0 {
		e.C.ExpectEq("head first line is 1", lines[0], "1")
	}

	res = e.Run("head", "-n", "3", f)
	lines = splitLines(res.Stdout)
	e.C.ExpectEq("head -n 3", len(lines), 3)
	if len(lines) > 0 {
		e.C.ExpectEq("head -n 3 last line is 3", lines[len(lines)-1], "3")
	}

	res = e.Run("tail", f)
	e.C.ExpectExit("tail exits 0", res.ExitStatus, 0)
	lines = splitLines(res.Stdout)
	e.C.ExpectEq("tail default 10 lines", len(lines), 10)
	if len(lines) > 0 {
		e.C.ExpectEq("tail last line is 20", lines[len(lines)-1], "20")
	}

	res = e.Run("tail", "-n", "3", f)
	lines = splitLines(res.Stdout)
	e.C.ExpectEq("tail -n 3", len(lines), 3)
	if len(lines) > 0 {
		e.C.ExpectEq("tail -n 3 first line is 18", lines[0], "18")
	}
}

func wc(e *Env) {
	dir, release := e.TempDir()
	defer release()

	f := filepath.Join(dir, "wc.txt")
	e.WriteFile(f, "one two three\nfour five\n")

	res := e.Run("wc", "-l", f)
	e.C.ExpectExit("wc -l exits 0", res.ExitStatus, 0)
	e.C.ExpectContains("wc -l count is 2", res.Stdout, "2")

	res = e.Run("wc", "-w", f)
	e.C.ExpectContains("wc -w count is 5", res.Stdout, "5")

	// "one two three\nfour five\n" = 14 + 10 = 24 bytes
	res = e.Run("wc", "-c", f)
	e.C.ExpectContains("wc -c byte count", res.Stdout, "24")
}

func tee(e *Env) {
	dir, release := e.TempDir()
	defer release()

	outFile := filepath.Join(dir, "tee_out.txt")
	res := e.RunWith(harness.Invocation{Name: "tee", Args: []string{outFile}, Stdin: "tee test\n"})
	e.C.ExpectExit("tee exits 0", res.ExitStatus, 0)
	e.C.ExpectContains("tee passes stdout", res.Stdout, "tee test")

	data, err := os.ReadFile(outFile)
	if err != nil {
		e.C.Fail("tee writes to file", err.Error())
	} else {
		e.C.ExpectContains("tee writes to file", string(data), "tee test")
	}
}

// splitLines returns the content lines of out, stripped of
// surrounding whitespace.
func splitLines(out string) []string {
	trimmed := strings.TrimSpace(out)
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\n")
}
