// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package hooks

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/shlex"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the conventional name of the declarations file.
const DefaultFile = ".pre-commit-hooks.yaml"

// LanguageSystem marks a hook that runs tools already installed on the
// system. It is the only supported language.
const LanguageSystem = "system"

// Decl declares a single hook.
type Decl struct {
	// ID uniquely identifies the hook.
	ID string `yaml:"id"`
	// Name is a human-readable label.
	Name string `yaml:"name,omitempty"`
	// Description says what the hook does.
	Description string `yaml:"description,omitempty"`
	// Entry is the command to run. It is split into words like a shell
	// would, but is not interpreted by one.
	Entry string `yaml:"entry"`
	// Language is the execution environment; see [LanguageSystem].
	Language string `yaml:"language,omitempty"`
	// PassFilenames controls whether changed file paths are appended to the
	// command. It defaults to true when omitted.
	PassFilenames *bool `yaml:"pass_filenames,omitempty"`
	// SkipInCI skips the hook when running in CI.
	SkipInCI bool `yaml:"skip_in_ci,omitempty"`
	// OnlyInCI runs the hook only in CI.
	OnlyInCI bool `yaml:"only_in_ci,omitempty"`
}

// Label returns the name of the hook, or its ID if it has none.
func (d Decl) Label() string {
	if d.Name != "" {
		return d.Name
	}
	return d.ID
}

// PassesFilenames reports whether file paths are appended to the command.
func (d Decl) PassesFilenames() bool { return d.PassFilenames == nil || *d.PassFilenames }

// Command returns the argument vector that runs the hook on files.
func (d Decl) Command(files []string) ([]string, error) {
	argv, err := shlex.Split(d.Entry)
	if err != nil {
		return nil, fmt.Errorf("hook %q: parsing entry: %w", d.ID, err)
	}
	if len(argv) == 0 {
		return nil, fmt.Errorf("hook %q: %w: entry", d.ID, ErrMissingField)
	}
	if d.PassesFilenames() {
		argv = append(argv, files...)
	}
	return argv, nil
}

// Enabled reports whether the hook runs in the given environment.
func (d Decl) Enabled(inCI bool) bool {
	if inCI {
		return !d.SkipInCI
	}
	return !d.OnlyInCI
}

// Parse decodes a YAML list of declarations. Unknown keys are an error.
// Empty input yields no declarations.
func Parse(data []byte) ([]Decl, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var decls []Decl
	if err := dec.Decode(&decls); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("parsing hook declarations: %w", err)
	}
	return decls, nil
}

// Load reads and parses the declarations file at path.
func Load(path string) ([]Decl, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	decls, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return decls, nil
}
