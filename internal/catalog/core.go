package catalog

import (
	"strings"
	"time"

	"github.com/twbaty/winix/internal/harness"
)

func trueFalse(e *Env) {
	res := e.Run("true")
	e.C.ExpectExit("true exits 0", res.ExitStatus, 0)

	res = e.Run("false")
	e.C.ExpectExit("false exits 1", res.ExitStatus, 1)
}

func echo(e *Env) {
	res := e.Run("echo", "hello", "world")
	e.C.ExpectExit("echo exits 0", res.ExitStatus, 0)
	e.C.ExpectEq("echo basic output", res.Stdout, "hello world\n")

	res = e.Run("echo", "-n", "no newline")
	e.C.ExpectEq("echo -n suppresses newline", res.Stdout, "no newline")

	res = e.Run("echo", "-e", `line1\nline2`)
	e.C.ExpectContains(`echo -e expands \n`, res.Stdout, "line1")
	e.C.ExpectContains(`echo -e expands \n (line2)`, res.Stdout, "line2")
}

func pwd(e *Env) {
	res := e.Run("pwd")
	e.C.ExpectExit("pwd exits 0", res.ExitStatus, 0)
	e.C.Check("pwd produces output", strings.TrimSpace(res.Stdout) != "", "")
}

func printfUtil(e *Env) {
	res := e.Run("printf", "%s %s\n", "hello", "world")
	e.C.ExpectExit("printf exits 0", res.ExitStatus, 0)
	e.C.ExpectEq("printf basic format", res.Stdout, "hello world\n")
}

func sleepUtil(e *Env) {
	start := time.Now()
	res := e.RunWith(harness.Invocation{Name: "sleep", Args: []string{"1"}, Timeout: 10 * time.Second})
	elapsed := time.Since(start)
	e.C.ExpectExit("sleep exits 0", res.ExitStatus, 0)
	e.C.Check("sleep 1 takes at least 0.9s", elapsed >= 900*time.Millisecond, "")
}

func clearUtil(e *Env) {
	res := e.Run("clear")
	e.C.ExpectExit("clear exits 0", res.ExitStatus, 0)
}
