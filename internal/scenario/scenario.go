// Package scenario loads and executes YAML-defined conformance
// scenarios. Scenario files extend the built-in catalog with
// site-specific checks without recompiling the harness. Files are
// validated twice: structurally against the embedded CUE schema, then
// decoded with strict field checking so typos surface as load errors
// rather than silently ignored fields.
package scenario

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Scenario is one YAML-defined conformance scenario.
type Scenario struct {
	// Name uniquely identifies this scenario within a report run.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Env holds environment overrides applied for the scenario's
	// duration and restored afterwards.
	Env map[string]string `yaml:"env,omitempty"`

	// Fixtures are files written into the scenario's scratch
	// directory before any step runs. Paths are relative to that
	// directory.
	Fixtures []Fixture `yaml:"fixtures,omitempty"`

	// Steps run in order. Each invokes one target executable (or a
	// shell script) and checks its expectations.
	Steps []Step `yaml:"steps"`
}

// Fixture is one file seeded into the scratch directory.
type Fixture struct {
	Path     string `yaml:"path"`
	Contents string `yaml:"contents"`
}

// Step invokes either a single executable (run) or an interactive
// shell script (shell). The literal {dir} in args, stdin, and shell
// commands is replaced with the scratch directory path.
type Step struct {
	Run    string   `yaml:"run,omitempty"`
	Shell  []string `yaml:"shell,omitempty"`
	Args   []string `yaml:"args,omitempty"`
	Stdin  string   `yaml:"stdin,omitempty"`
	Expect *Expect  `yaml:"expect,omitempty"`
}

// Expect lists the step's assertions. All set fields are checked;
// unset fields are skipped.
type Expect struct {
	Exit              *int     `yaml:"exit,omitempty"`
	StdoutEq          *string  `yaml:"stdout_eq,omitempty"`
	StdoutContains    string   `yaml:"stdout_contains,omitempty"`
	StdoutNotContains string   `yaml:"stdout_not_contains,omitempty"`
	StderrContains    string   `yaml:"stderr_contains,omitempty"`
	FilesExist        []string `yaml:"files_exist,omitempty"`
}

// Load reads and parses one scenario YAML file. It returns an error
// if the file is malformed, violates the schema, contains unknown
// fields, or is missing required fields.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	if err := validateSchema(path, data); err != nil {
		return nil, fmt.Errorf("invalid scenario %s: %w", filepath.Base(path), err)
	}

	var scen Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scen); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validate(&scen); err != nil {
		return nil, fmt.Errorf("invalid scenario %s: %w", filepath.Base(path), err)
	}
	return &scen, nil
}

// LoadDir loads every .yaml/.yml file in dir, sorted by filename so
// report order is stable.
func LoadDir(dir string) ([]*Scenario, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch filepath.Ext(entry.Name()) {
		case ".yaml", ".yml":
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)

	scenarios := make([]*Scenario, 0, len(paths))
	for _, path := range paths {
		scen, err := Load(path)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, scen)
	}
	return scenarios, nil
}

// validate checks required fields and per-step shape beyond what the
// schema can express.
func validate(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}

	for i, f := range s.Fixtures {
		if f.Path == "" {
			return fmt.Errorf("fixtures[%d]: path is required", i)
		}
		if filepath.IsAbs(f.Path) {
			return fmt.Errorf("fixtures[%d]: path must be relative", i)
		}
	}

	for i, step := range s.Steps {
		hasRun := step.Run != ""
		hasShell := len(step.Shell) > 0
		if hasRun == hasShell {
			return fmt.Errorf("steps[%d]: exactly one of run or shell is required", i)
		}
		if hasShell && (len(step.Args) > 0 || step.Stdin != "") {
			return fmt.Errorf("steps[%d]: args and stdin are not valid with shell", i)
		}
	}
	return nil
}
