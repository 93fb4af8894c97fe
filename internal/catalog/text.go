package catalog

import (
	"path/filepath"
	"strings"

	"github.com/twbaty/winix/internal/harness"
)

func sortUtil(e *Env) {
	dir, release := e.TempDir()
	defer release()

	f := filepath.Join(dir, "sort.txt")
	e.WriteFile(f, "banana\napple\ncherry\napple\n")

	res := e.Run("sort", f)
	e.C.ExpectExit("sort exits 0", res.ExitStatus, 0)
	e.C.ExpectEq("sort alphabetical", splitLines(res.Stdout),
		[]string{"apple", "apple", "banana", "cherry"})

	res = e.Run("sort", "-r", f)
	lines := splitLines(res.Stdout)
	if len(lines) > 0 {
		e.C.ExpectEq("sort -r reverse", lines[0], "cherry")
	}

	res = e.Run("sort", "-u", f)
	e.C.ExpectEq("sort -u deduplicates", splitLines(res.Stdout),
		[]string{"apple", "banana", "cherry"})
}

func uniq(e *Env) {
	dir, release := e.TempDir()
	defer release()

	f := filepath.Join(dir, "uniq.txt")
	e.WriteFile(f, "apple\napple\nbanana\nbanana\nbanana\ncherry\n")

	res := e.Run("uniq", f)
	e.C.ExpectExit("uniq exits 0", res.ExitStatus, 0)
	e.C.ExpectEq("uniq deduplicates adjacent", splitLines(res.Stdout),
		[]string{"apple", "banana", "cherry"})

	res = e.Run("uniq", "-c", f)
	e.C.ExpectContains("uniq -c shows count for apple", res.Stdout, "2")
	e.C.ExpectContains("uniq -c shows count for banana", res.Stdout, "3")

	res = e.Run("uniq", "-d", f)
	onlyDupes := true
	for _, line := range splitLines(res.Stdout) {
		if line != "apple" && line != "banana" {
			onlyDupes = false
		}
	}
	e.C.Check("uniq -d only duplicates", onlyDupes, res.Stdout)

	res = e.Run("uniq", "-u", f)
	e.C.ExpectContains("uniq -u only unique", res.Stdout, "cherry")
	e.C.ExpectNotContains("uniq -u excludes duplicates", res.Stdout, "apple")
}

func grep(e *Env) {
	dir, release := e.TempDir()
	defer release()

	f := filepath.Join(dir, "grep.txt")
	e.WriteFile(f, "Hello World\nhello winix\nGoodbye\n")

	res := e.Run("grep", "hello", f)
	e.C.ExpectExit("grep exits 0 on match", res.ExitStatus, 0)
	e.C.ExpectEq("grep case-sensitive match", strings.TrimSpace(res.Stdout), "hello winix")

	res = e.Run("grep", "-i", "hello", f)
	e.C.ExpectEq("grep -i matches both cases", len(splitLines(res.Stdout)), 2)

	res = e.Run("grep", "-v", "hello", f)
	e.C.ExpectContains("grep -v inverts match", res.Stdout, "Hello World")
	e.C.ExpectContains("grep -v includes non-match", res.Stdout, "Goodbye")
	e.C.ExpectNotContains("grep -v excludes match", res.Stdout, "hello winix")

	res = e.Run("grep", "-c", "hello", f)
	e.C.ExpectEq("grep -c count", strings.TrimSpace(res.Stdout), "1")

	res = e.Run("grep", "-n", "hello", f)
	e.C.ExpectContains("grep -n shows line number", res.Stdout, "2:")

	res = e.Run("grep", "NOMATCH", f)
	e.C.ExpectExit("grep no match exits 1", res.ExitStatus, 1)
}

func cut(e *Env) {
	res := e.Run("cut", "--version")
	e.C.ExpectExit("cut --version exits 0", res.ExitStatus, 0)
	e.C.ExpectContains("cut --version output", res.Stdout, "cut")

	dir, release := e.TempDir()
	defer release()

	f := filepath.Join(dir, "cut.txt")
	e.WriteFile(f, "one:two:three\nfoo:bar:baz\n")

	res = e.Run("cut", "-d:", "-f1", f)
	e.C.ExpectExit("cut -f1 exits 0", res.ExitStatus, 0)
	e.C.ExpectEq("cut -f1", splitLines(res.Stdout), []string{"one", "foo"})

	res = e.Run("cut", "-d:", "-f2", f)
	e.C.ExpectEq("cut -f2", splitLines(res.Stdout), []string{"two", "bar"})

	res = e.Run("cut", "-d:", "-f1,3", f)
	e.C.ExpectContains("cut -f1,3 first field", res.Stdout, "one")
	e.C.ExpectContains("cut -f1,3 third field", res.Stdout, "three")

	res = e.Run("cut", "-c1-3", f)
	e.C.ExpectEq("cut -c1-3", splitLines(res.Stdout), []string{"one", "foo"})

	res = e.Run("cut", "-d:", "-f2-", f)
	e.C.ExpectContains("cut -f2- includes field 2", res.Stdout, "two")
	e.C.ExpectContains("cut -f2- includes field 3", res.Stdout, "three")
}

func tr(e *Env) {
	res := e.Run("tr", "--version")
	e.C.ExpectExit("tr --version exits 0", res.ExitStatus, 0)
	e.C.ExpectContains("tr --version output", res.Stdout, "tr")

	res = e.RunWith(harness.Invocation{Name: "tr", Args: []string{"a-z", "A-Z"}, Stdin: "hello world\n"})
	e.C.ExpectExit("tr a-z A-Z exits 0", res.ExitStatus, 0)
	e.C.ExpectEq("tr lowercase to uppercase", strings.TrimSpace(res.Stdout), "HELLO WORLD")

	res = e.RunWith(harness.Invocation{Name: "tr", Args: []string{"A-Z", "a-z"}, Stdin: "HELLO WORLD\n"})
	e.C.ExpectEq("tr uppercase to lowercase", strings.TrimSpace(res.Stdout), "hello world")

	res = e.RunWith(harness.Invocation{Name: "tr", Args: []string{"-d", "aeiou"}, Stdin: "hello world\n"})
	e.C.ExpectEq("tr -d vowels", strings.TrimSpace(res.Stdout), "hll wrld")

	res = e.RunWith(harness.Invocation{Name: "tr", Args: []string{"-s", " "}, Stdin: "too  many   spaces\n"})
	e.C.ExpectEq("tr -s squeeze spaces", strings.TrimSpace(res.Stdout), "too many spaces")

	res = e.RunWith(harness.Invocation{Name: "tr", Args: []string{"-d", "\n"}, Stdin: "line1\nline2\n"})
	e.C.ExpectEq("tr -d newlines", res.Stdout, "line1line2")
}

func sed(e *Env) {
	res := e.RunWith(harness.Invocation{Name: "sed", Args: []string{"s/hello/goodbye/"}, Stdin: "hello world\n"})
	e.C.Check("sed s substitute", strings.TrimSpace(res.Stdout) == "goodbye world", res.Stdout)

	res = e.RunWith(harness.Invocation{Name: "sed", Args: []string{"s/o/0/g"}, Stdin: "foo boo moo\n"})
	e.C.Check("sed s global flag", strings.TrimSpace(res.Stdout) == "f00 b00 m00", res.Stdout)

	res = e.RunWith(harness.Invocation{Name: "sed", Args: []string{"/foo/d"}, Stdin: "keep\nfoo\nkeep2\n"})
	e.C.Check("sed d delete matching", strings.TrimSpace(res.Stdout) == "keep\nkeep2", res.Stdout)

	res = e.RunWith(harness.Invocation{Name: "sed", Args: []string{"-n", "/foo/p"}, Stdin: "keep\nfoo\nkeep2\n"})
	e.C.Check("sed -n with p print only matching", strings.TrimSpace(res.Stdout) == "foo", res.Stdout)

	res = e.RunWith(harness.Invocation{Name: "sed", Args: []string{"s/^/> /"}, Stdin: "line1\nline2\n"})
	lines := splitLines(res.Stdout)
	e.C.Check("sed s anchor caret",
		len(lines) == 2 && lines[0] == "> line1" && lines[1] == "> line2", res.Stdout)

	res = e.RunWith(harness.Invocation{Name: "sed", Args: []string{"s/ *$//"}, Stdin: "hello   \nworld\n"})
	e.C.Check("sed s trim trailing spaces", strings.TrimSpace(res.Stdout) == "hello\nworld", res.Stdout)

	res = e.RunWith(harness.Invocation{Name: "sed", Args: []string{"s/[aeiou]/*/gi"}, Stdin: "Hello World\n"})
	e.C.Check("sed s char class and i flag", strings.TrimSpace(res.Stdout) == "H*ll* W*rld", res.Stdout)

	res = e.RunWith(harness.Invocation{Name: "sed", Args: []string{"2d"}, Stdin: "line1\nline2\nline3\n"})
	e.C.Check("sed line address delete", strings.TrimSpace(res.Stdout) == "line1\nline3", res.Stdout)

	res = e.RunWith(harness.Invocation{Name: "sed", Args: []string{"-e", "s/foo/bar/", "-e", "s/baz/qux/"}, Stdin: "foo baz\n"})
	e.C.Check("sed multiple -e expressions", strings.TrimSpace(res.Stdout) == "bar qux", res.Stdout)

	res = e.Run("sed", "--version")
	e.C.Check("sed --version",
		strings.Contains(res.Stdout, "sed") && strings.Contains(res.Stdout, "Winix"), res.Stdout)

	res = e.Run("sed", "--help")
	e.C.Check("sed --help", strings.Contains(res.Stdout, "Usage"), res.Stdout)
}
