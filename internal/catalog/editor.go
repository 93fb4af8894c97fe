package catalog

// nix only checks the editor's non-interactive surface; driving the
// full-screen UI would need a pty.
func nix(e *Env) {
	res := e.Run("nix", "--version")
	e.C.ExpectExit("nix --version exits 0", res.ExitStatus, 0)
	e.C.ExpectContains("nix --version shows nix", res.Stdout, "nix")
	e.C.ExpectContains("nix --version shows 1.0", res.Stdout, "1.0")

	res = e.Run("nix", "--help")
	e.C.ExpectExit("nix --help exits 0", res.ExitStatus, 0)
	e.C.ExpectContains("nix --help mentions Ctrl+S", res.Stdout, "Ctrl+S")
	e.C.ExpectContains("nix --help mentions Ctrl+Q", res.Stdout, "Ctrl+Q")
	e.C.ExpectContains("nix --help mentions Ctrl+W", res.Stdout, "Ctrl+W")
}
