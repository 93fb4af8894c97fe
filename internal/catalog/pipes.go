package catalog

import (
	"strings"

	"github.com/twbaty/winix/internal/harness"
)

func xargs(e *Env) {
	res := e.RunWith(harness.Invocation{
		Name:  "xargs",
		Args:  []string{"echo"},
		Stdin: "a b c\n",
	})
	e.C.Check("xargs basic echo", strings.TrimSpace(res.Stdout) == "a b c", res.Stdout)

	res = e.RunWith(harness.Invocation{
		Name:  "xargs",
		Args:  []string{"-n", "1", "echo"},
		Stdin: "a b c\n",
	})
	e.C.ExpectEq("xargs -n 1 one per line", splitLines(res.Stdout), []string{"a", "b", "c"})

	res = e.RunWith(harness.Invocation{
		Name:  "xargs",
		Args:  []string{"-n", "2", "echo"},
		Stdin: "a b c d\n",
	})
	e.C.ExpectEq("xargs -n 2 two per invocation", len(splitLines(res.Stdout)), 2)

	res = e.RunWith(harness.Invocation{
		Name:  "xargs",
		Args:  []string{"-I{}", "echo", "item:{}"},
		Stdin: "foo\nbar\n",
	})
	e.C.ExpectEq("xargs -I{} replace placeholder", splitLines(res.Stdout), []string{"item:foo", "item:bar"})

	res = e.RunWith(harness.Invocation{
		Name:  "xargs",
		Args:  []string{"-r", "echo", "should_not_run"},
		Stdin: "",
	})
	e.C.Check("xargs -r no-run on empty stdin", strings.TrimSpace(res.Stdout) == "", res.Stdout)

	res = e.RunWith(harness.Invocation{
		Name:  "xargs",
		Args:  []string{"-d", "\n", "echo"},
		Stdin: "hello world\n",
	})
	e.C.Check("xargs -d newline delimiter", strings.Contains(res.Stdout, "hello world"), res.Stdout)

	res = e.Run("xargs", "--version")
	e.C.Check("xargs --version",
		strings.Contains(res.Stdout, "xargs") && strings.Contains(res.Stdout, "Winix"), res.Stdout)

	res = e.Run("xargs", "--help")
	e.C.Check("xargs --help", strings.Contains(res.Stdout, "Usage"), res.Stdout)
}
