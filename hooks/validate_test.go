// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package hooks

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"testing"

	"go.astrophena.name/pig/testutil"
)

// fakeLookPath finds only the named commands.
func fakeLookPath(known ...string) LookPathFunc {
	return func(file string) (string, error) {
		for _, k := range known {
			if k == file {
				return "/usr/bin/" + file, nil
			}
		}
		return "", fmt.Errorf("exec: %q: %w", file, exec.ErrNotFound)
	}
}

func TestValidate(t *testing.T) {
	lookPath := fakeLookPath("go", "gofmt")

	cases := map[string]struct {
		decls    []Decl
		wantErrs []error
	}{
		"valid": {
			decls: []Decl{
				{ID: "fmt", Entry: "gofmt -l -w .", Language: LanguageSystem},
				{ID: "test", Entry: "go test ./..."},
			},
		},
		"empty": {},
		"missing id": {
			decls:    []Decl{{Entry: "go vet ./..."}},
			wantErrs: []error{ErrMissingField},
		},
		"missing entry": {
			decls:    []Decl{{ID: "vet"}},
			wantErrs: []error{ErrMissingField},
		},
		"duplicate id": {
			decls: []Decl{
				{ID: "test", Entry: "go test ./..."},
				{ID: "test", Entry: "go test -race ./..."},
			},
			wantErrs: []error{ErrDuplicateID},
		},
		"unsupported language": {
			decls:    []Decl{{ID: "lint", Entry: "go vet", Language: "docker"}},
			wantErrs: []error{ErrUnsupportedLanguage},
		},
		"not executable": {
			decls:    []Decl{{ID: "clippy", Entry: "cargo clippy"}},
			wantErrs: []error{ErrNotExecutable, exec.ErrNotFound},
		},
		"several problems at once": {
			decls: []Decl{
				{ID: "a", Entry: "cargo fmt"},
				{ID: "a", Entry: "go vet", Language: "python"},
			},
			wantErrs: []error{ErrNotExecutable, ErrDuplicateID, ErrUnsupportedLanguage},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			err := Validate(tc.decls, lookPath)
			if len(tc.wantErrs) == 0 {
				testutil.AssertEqual(t, err, nil)
				return
			}
			for _, want := range tc.wantErrs {
				if !errors.Is(err, want) {
					t.Errorf("Validate() error = %v, want it to wrap %v", err, want)
				}
			}
		})
	}
}

func TestValidateNamesHooks(t *testing.T) {
	err := Validate([]Decl{{ID: "ok", Entry: "go vet"}, {Entry: "go vet"}}, fakeLookPath("go"))
	if err == nil || !strings.Contains(err.Error(), "hook #2") {
		t.Fatalf("Validate() must name hooks without id by position, got %v", err)
	}
}
