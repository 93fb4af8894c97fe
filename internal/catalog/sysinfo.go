package catalog

import (
	"path/filepath"
	"strings"
)

func ver(e *Env) {
	res := e.Run("ver")
	e.C.ExpectExit("ver exits 0", res.ExitStatus, 0)
	e.C.ExpectContains("ver shows Winix", res.Stdout, "Winix")
	e.C.ExpectContains("ver shows version number", res.Stdout, "1.0")

	res = e.Run("ver", "--version")
	e.C.ExpectExit("ver --version exits 0", res.ExitStatus, 0)
	e.C.ExpectContains("ver --version output", res.Stdout, "Winix")
}

func uname(e *Env) {
	res := e.Run("uname")
	e.C.ExpectExit("uname exits 0", res.ExitStatus, 0)
	e.C.ExpectContains("uname default shows Windows", res.Stdout, "Windows")

	res = e.Run("uname", "-a")
	e.C.ExpectContains("uname -a shows Windows", res.Stdout, "Windows")
	e.C.ExpectContains("uname -a shows arch", res.Stdout, "x86_64")

	res = e.Run("uname", "-m")
	e.C.ExpectEq("uname -m is x86_64", strings.TrimSpace(res.Stdout), "x86_64")
}

func uptime(e *Env) {
	res := e.Run("uptime")
	e.C.ExpectExit("uptime exits 0", res.ExitStatus, 0)
	e.C.Check("uptime produces output", strings.TrimSpace(res.Stdout) != "", "")
	e.C.ExpectContains("uptime shows up", res.Stdout, "up")
}

func whoami(e *Env) {
	res := e.Run("whoami")
	e.C.ExpectExit("whoami exits 0", res.ExitStatus, 0)
	e.C.Check("whoami produces a username", strings.TrimSpace(res.Stdout) != "", "")
}

func date(e *Env) {
	res := e.Run("date")
	e.C.ExpectExit("date exits 0", res.ExitStatus, 0)
	e.C.Check("date produces output", strings.TrimSpace(res.Stdout) != "", "")
}

func df(e *Env) {
	res := e.Run("df")
	e.C.ExpectExit("df exits 0", res.ExitStatus, 0)
	e.C.ExpectContains("df shows header", res.Stdout, "Filesystem")
	e.C.Check("df shows at least one drive", len(splitLines(res.Stdout)) >= 2, res.Stdout)

	res = e.Run("df", "-h")
	e.C.ExpectContains("df -h shows human sizes", res.Stdout, "Filesystem")
}

func du(e *Env) {
	dir, release := e.TempDir()
	defer release()

	e.WriteFile(filepath.Join(dir, "a.txt"), strings.Repeat("a", 2048))

	res := e.Run("du", dir)
	e.C.ExpectExit("du exits 0", res.ExitStatus, 0)
	e.C.Check("du produces output", strings.TrimSpace(res.Stdout) != "", "")

	res = e.Run("du", "-s", dir)
	e.C.ExpectEq("du -s produces single line", len(splitLines(res.Stdout)), 1)

	res = e.Run("du", "-h", dir)
	e.C.Check("du -h produces output", strings.TrimSpace(res.Stdout) != "", "")
}

func ps(e *Env) {
	res := e.Run("ps")
	e.C.ExpectExit("ps exits 0", res.ExitStatus, 0)
	e.C.ExpectContains("ps shows header", res.Stdout, "PID")
	e.C.ExpectContains("ps shows PPID column", res.Stdout, "PPID")
	e.C.Check("ps lists processes", len(splitLines(res.Stdout)) >= 3, res.Stdout)

	res = e.Run("ps", "-l")
	e.C.ExpectContains("ps -l shows RSS column", res.Stdout, "RSS")
}
