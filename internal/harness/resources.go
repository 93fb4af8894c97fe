package harness

import "os"

// TempDir creates a uniquely named scratch directory for one scenario.
// The release func removes it recursively; removal errors are
// deliberately ignored so teardown can never mask an earlier assertion
// failure. Nesting is not supported: one acquisition brackets one
// scenario.
func TempDir() (string, func(), error) {
	dir, err := os.MkdirTemp("", "winix_test_")
	if err != nil {
		return "", nil, err
	}
	return dir, func() { _ = os.RemoveAll(dir) }, nil
}

// SetEnv sets a process environment variable and returns a restore
// func that reinstates the prior value, or unsets the variable if it
// was previously absent. Callers defer the restore so it runs even
// when assertions inside the scenario failed.
func SetEnv(key, value string) func() {
	prev, had := os.LookupEnv(key)
	_ = os.Setenv(key, value)
	return func() {
		if had {
			_ = os.Setenv(key, prev)
		} else {
			_ = os.Unsetenv(key)
		}
	}
}
