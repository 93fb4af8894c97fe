package catalog

import (
	"os"
	"path/filepath"
	"strings"
)

// glob exercises wildcard expansion inside the interactive shell. Each
// script cds into the fixture dir first so patterns resolve against it.
func glob(e *Env) {
	dir, release := e.TempDir()
	defer release()

	for _, name := range []string{"alpha.txt", "beta.txt", "gamma.log"} {
		e.WriteFile(filepath.Join(dir, name), "")
	}

	out := e.RunShell(dir, "cd "+dir, "echo *.txt").Output
	e.C.Check("glob *.txt expands alpha", strings.Contains(out, "alpha.txt"), out)
	e.C.Check("glob *.txt expands beta", strings.Contains(out, "beta.txt"), out)
	e.C.Check("glob *.txt excludes .log", !strings.Contains(out, "gamma.log"), out)

	out = e.RunShell(dir, "cd "+dir, "echo *.log").Output
	e.C.Check("glob *.log expands gamma", strings.Contains(out, "gamma.log"), out)
	e.C.Check("glob *.log excludes .txt", !strings.Contains(out, "alpha.txt"), out)

	out = e.RunShell(dir, "cd "+dir, `echo "*.txt"`).Output
	e.C.Check("glob quoted not expanded", strings.Contains(out, "*.txt"), out)

	out = e.RunShell(dir, "cd "+dir, "echo *.xyz").Output
	e.C.Check("glob no-match is literal", strings.Contains(out, "*.xyz"), out)

	sub := filepath.Join(dir, "sub")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		e.C.Fail("create sub fixture", err.Error())
		return
	}
	e.WriteFile(filepath.Join(sub, "one.txt"), "")
	e.WriteFile(filepath.Join(sub, "two.txt"), "")

	out = e.RunShell(dir, "cd "+dir, "echo sub/*.txt").Output
	e.C.Check("glob dir prefix one", strings.Contains(out, "one.txt"), out)
	e.C.Check("glob dir prefix two", strings.Contains(out, "two.txt"), out)
}
