package catalog

import "strings"

func basenameDirname(e *Env) {
	res := e.Run("basename", "/usr/bin/grep")
	e.C.ExpectExit("basename exits 0", res.ExitStatus, 0)
	e.C.ExpectEq("basename extracts filename", strings.TrimSpace(res.Stdout), "grep")

	res = e.Run("dirname", "/usr/bin/grep")
	e.C.ExpectExit("dirname exits 0", res.ExitStatus, 0)
	e.C.ExpectEq("dirname extracts directory", strings.TrimSpace(res.Stdout), "/usr/bin")

	res = e.Run("basename", "file.txt", ".txt")
	e.C.ExpectEq("basename strips suffix", strings.TrimSpace(res.Stdout), "file")
}

func which(e *Env) {
	// Whether which finds itself depends on PATH; either answer is fine
	// as long as the tool does not crash.
	res := e.Run("which", "which")
	e.C.Check("which runs without crash", res.ExitStatus == 0 || res.ExitStatus == 1, "")
}
