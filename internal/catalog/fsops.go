package catalog

import (
	"os"
	"path/filepath"
	"strings"
)

// isDir / isFile report filesystem side effects of the invoked tools.
func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func mkdirLs(e *Env) {
	dir, release := e.TempDir()
	defer release()

	newdir := filepath.Join(dir, "testdir")
	res := e.Run("mkdir", newdir)
	e.C.ExpectExit("mkdir exits 0", res.ExitStatus, 0)
	e.C.Check("mkdir creates directory", isDir(newdir), "")

	nested := filepath.Join(dir, "a", "b", "c")
	res = e.Run("mkdir", "-p", nested)
	e.C.ExpectExit("mkdir -p exits 0", res.ExitStatus, 0)
	e.C.Check("mkdir -p creates nested dirs", isDir(nested), "")

	f := filepath.Join(newdir, "file.txt")
	res = e.Run("touch", f)
	e.C.ExpectExit("touch exits 0", res.ExitStatus, 0)
	e.C.Check("touch creates file", isFile(f), "")

	res = e.Run("ls", newdir)
	e.C.ExpectExit("ls exits 0", res.ExitStatus, 0)
	e.C.ExpectContains("ls shows created file", res.Stdout, "file.txt")

	res = e.Run("rmdir", newdir)
	e.C.ExpectExit("rmdir non-empty exits 1 (has file)", res.ExitStatus, 1)

	if err := os.Remove(f); err != nil {
		e.C.Fail("remove fixture file.txt", err.Error())
	}
	res = e.Run("rmdir", newdir)
	e.C.ExpectExit("rmdir empty dir exits 0", res.ExitStatus, 0)
	e.C.Check("rmdir removes directory", !isDir(newdir), "")
}

func cp(e *Env) {
	dir, release := e.TempDir()
	defer release()

	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "dst.txt")
	e.WriteFile(src, "copy me\n")

	res := e.Run("cp", src, dst)
	e.C.ExpectExit("cp exits 0", res.ExitStatus, 0)
	e.C.Check("cp creates destination", isFile(dst), "")
	if data, err := os.ReadFile(dst); err != nil {
		e.C.Fail("read cp destination", err.Error())
	} else {
		e.C.ExpectEq("cp content matches", string(data), "copy me\n")
	}

	res = e.Run("cp", src, dst)
	e.C.ExpectExit("cp existing dst without -f exits 1", res.ExitStatus, 1)
	e.C.ExpectContains("cp existing dst error message", res.Stderr, "already exists")

	res = e.Run("cp", "-f", src, dst)
	e.C.ExpectExit("cp -f overwrites", res.ExitStatus, 0)

	srcdir := filepath.Join(dir, "srcdir")
	dstdir := filepath.Join(dir, "dstdir")
	if err := os.MkdirAll(srcdir, 0o755); err != nil {
		e.C.Fail("create srcdir fixture", err.Error())
	}
	e.WriteFile(filepath.Join(srcdir, "inner.txt"), "inner\n")

	res = e.Run("cp", srcdir, dstdir)
	e.C.ExpectExit("cp dir without -r exits 1", res.ExitStatus, 1)

	res = e.Run("cp", "-r", srcdir, dstdir)
	e.C.ExpectExit("cp -r exits 0", res.ExitStatus, 0)
	e.C.Check("cp -r creates destination dir", isDir(dstdir), "")
	e.C.Check("cp -r copies inner file", isFile(filepath.Join(dstdir, "inner.txt")), "")
}

func mv(e *Env) {
	dir, release := e.TempDir()
	defer release()

	src := filepath.Join(dir, "orig.txt")
	dst := filepath.Join(dir, "moved.txt")
	e.WriteFile(src, "move me\n")

	res := e.Run("mv", src, dst)
	e.C.ExpectExit("mv exits 0", res.ExitStatus, 0)
	e.C.Check("mv destination exists", isFile(dst), "")
	e.C.Check("mv source is gone", !isFile(src), "")
	if data, err := os.ReadFile(dst); err != nil {
		e.C.Fail("read mv destination", err.Error())
	} else {
		e.C.ExpectEq("mv content preserved", string(data), "move me\n")
	}
}

func rm(e *Env) {
	dir, release := e.TempDir()
	defer release()

	f := filepath.Join(dir, "del.txt")
	e.WriteFile(f, "delete me\n")

	res := e.Run("rm", f)
	e.C.ExpectExit("rm exits 0", res.ExitStatus, 0)
	e.C.Check("rm removes file", !isFile(f), "")

	subdir := filepath.Join(dir, "subdir")
	if err := os.MkdirAll(subdir, 0o755); err != nil {
		e.C.Fail("create subdir fixture", err.Error())
	}
	e.WriteFile(filepath.Join(subdir, "x.txt"), "x\n")

	res = e.Run("rm", subdir)
	e.C.ExpectExit("rm dir without -r exits 1", res.ExitStatus, 1)

	res = e.Run("rm", "-r", subdir)
	e.C.ExpectExit("rm -r exits 0", res.ExitStatus, 0)
	e.C.Check("rm -r removes directory tree", !isDir(subdir), "")
}

func stat(e *Env) {
	dir, release := e.TempDir()
	defer release()

	f := filepath.Join(dir, "statme.txt")
	e.WriteFile(f, "hello\n")

	res := e.Run("stat", f)
	e.C.ExpectExit("stat exits 0", res.ExitStatus, 0)
	e.C.ExpectContains("stat shows File:", res.Stdout, "File:")
	e.C.ExpectContains("stat shows Size:", res.Stdout, "Size:")
	e.C.ExpectContains("stat shows Modify:", res.Stdout, "Modify:")
	e.C.ExpectContains("stat shows file type", res.Stdout, "regular file")

	res = e.Run("stat", filepath.Join(dir, "nofile.txt"))
	e.C.ExpectExit("stat nonexistent exits 1", res.ExitStatus, 1)
}

func find(e *Env) {
	res := e.Run("find", "--version")
	e.C.ExpectExit("find --version exits 0", res.ExitStatus, 0)
	e.C.ExpectContains("find --version output", res.Stdout, "find")

	dir, release := e.TempDir()
	defer release()

	if err := os.MkdirAll(filepath.Join(dir, "sub"), 0o755); err != nil {
		e.C.Fail("create sub fixture", err.Error())
	}
	e.WriteFile(filepath.Join(dir, "a.txt"), "")
	e.WriteFile(filepath.Join(dir, "b.txt"), "")
	e.WriteFile(filepath.Join(dir, "sub", "c.txt"), "")
	e.WriteFile(filepath.Join(dir, "sub", "notes.log"), "")

	res = e.Run("find", dir)
	e.C.ExpectExit("find exits 0", res.ExitStatus, 0)
	e.C.Check("find lists all files",
		strings.Contains(res.Stdout, "a.txt") && strings.Contains(res.Stdout, "c.txt"), res.Stdout)

	res = e.Run("find", dir, "-name", "*.txt")
	e.C.Check("find -name *.txt finds a.txt", strings.Contains(res.Stdout, "a.txt"), res.Stdout)
	e.C.Check("find -name *.txt finds c.txt", strings.Contains(res.Stdout, "c.txt"), res.Stdout)
	e.C.Check("find -name *.txt excludes .log", !strings.Contains(res.Stdout, "notes.log"), res.Stdout)

	res = e.Run("find", dir, "-type", "f")
	e.C.Check("find -type f includes files", strings.Contains(res.Stdout, "a.txt"), res.Stdout)

	res = e.Run("find", dir, "-type", "d")
	e.C.Check("find -type d includes dirs", strings.Contains(res.Stdout, "sub"), res.Stdout)
	e.C.Check("find -type d excludes files", !strings.Contains(res.Stdout, "a.txt"), res.Stdout)

	res = e.Run("find", dir, "-maxdepth", "1", "-name", "*.txt")
	e.C.Check("find -maxdepth 1 finds top-level", strings.Contains(res.Stdout, "a.txt"), res.Stdout)
	e.C.Check("find -maxdepth 1 excludes subdir", !strings.Contains(res.Stdout, "c.txt"), res.Stdout)
}

func diff(e *Env) {
	res := e.Run("diff", "--version")
	e.C.ExpectExit("diff --version exits 0", res.ExitStatus, 0)
	e.C.ExpectContains("diff --version output", res.Stdout, "diff")

	dir, release := e.TempDir()
	defer release()

	f1 := filepath.Join(dir, "f1.txt")
	f2 := filepath.Join(dir, "f2.txt")
	e.WriteFile(f1, "line1\nline2\nline3\n")
	e.WriteFile(f2, "line1\nline2\nline3\n")

	res = e.Run("diff", f1, f2)
	e.C.ExpectExit("diff identical files exits 0", res.ExitStatus, 0)

	e.WriteFile(f2, "line1\nchanged\nline3\n")

	res = e.Run("diff", f1, f2)
	e.C.ExpectExit("diff different files exits 1", res.ExitStatus, 1)
	e.C.ExpectContains("diff shows changed line", res.Stdout, "changed")
	e.C.ExpectContains("diff shows < marker", res.Stdout, "<")
	e.C.ExpectContains("diff shows > marker", res.Stdout, ">")

	res = e.Run("diff", "-u", f1, f2)
	e.C.ExpectExit("diff -u exits 1", res.ExitStatus, 1)
	e.C.ExpectContains("diff -u shows --- header", res.Stdout, "---")
	e.C.ExpectContains("diff -u shows +++ header", res.Stdout, "+++")
	e.C.ExpectContains("diff -u shows @@ header", res.Stdout, "@@")

	res = e.Run("diff", "-q", f1, f2)
	e.C.ExpectExit("diff -q exits 1 on diff", res.ExitStatus, 1)
	e.C.Check("diff -q produces output", strings.TrimSpace(res.Stdout) != "", "")

	// Missing operand is a hard usage error, not an "inputs differ".
	res = e.Run("diff", f1, filepath.Join(dir, "nonexistent.txt"))
	e.C.ExpectExit("diff missing file exits 2", res.ExitStatus, 2)
}
