package harness

import (
	"path/filepath"
	"runtime"
)

// Resolver maps a target executable name to the path of its binary.
// The harness never inspects the binary; resolution is a pure naming
// convention, kept injectable so the harness can be pointed at
// arbitrary build outputs or cross-compiled targets.
type Resolver interface {
	Resolve(name string) string
}

// BuildDirResolver resolves names against a single build directory,
// appending the platform executable suffix.
type BuildDirResolver struct {
	Dir    string
	Suffix string
}

// NewBuildDirResolver returns a resolver for dir using the suffix of
// the current platform (".exe" on Windows, none elsewhere).
func NewBuildDirResolver(dir string) BuildDirResolver {
	suffix := ""
	if runtime.GOOS == "windows" {
		suffix = ".exe"
	}
	return BuildDirResolver{Dir: dir, Suffix: suffix}
}

// Resolve implements Resolver.
func (r BuildDirResolver) Resolve(name string) string {
	return filepath.Join(r.Dir, name+r.Suffix)
}
