// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package hooks

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingField is reported for a declaration without a required field.
	ErrMissingField = errors.New("missing required field")
	// ErrDuplicateID is reported when two declarations share an ID.
	ErrDuplicateID = errors.New("duplicate id")
	// ErrUnsupportedLanguage is reported for a language other than system.
	ErrUnsupportedLanguage = errors.New("unsupported language")
	// ErrNotExecutable is reported when the command of a hook can't be found.
	ErrNotExecutable = errors.New("command not executable")
)

// LookPathFunc resolves a command name to an executable, like [exec.LookPath].
type LookPathFunc func(file string) (string, error)

// Validate checks declarations before they are run: IDs must be present and
// unique, languages supported, and every entry must name an executable that
// lookPath can find. All problems are returned together.
func Validate(decls []Decl, lookPath LookPathFunc) error {
	var errs []error
	seen := make(map[string]int, len(decls))

	for i, d := range decls {
		name := d.ID
		if name == "" {
			name = fmt.Sprintf("#%d", i+1)
			errs = append(errs, fmt.Errorf("hook %s: %w: id", name, ErrMissingField))
		} else if first, ok := seen[d.ID]; ok {
			errs = append(errs, fmt.Errorf("hook %q: %w (also declared as hook #%d)", d.ID, ErrDuplicateID, first+1))
		} else {
			seen[d.ID] = i
		}

		if d.Language != "" && d.Language != LanguageSystem {
			errs = append(errs, fmt.Errorf("hook %q: %w %q", name, ErrUnsupportedLanguage, d.Language))
		}

		argv, err := d.Command(nil)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if _, err := lookPath(argv[0]); err != nil {
			errs = append(errs, fmt.Errorf("hook %q: %w: %w", name, ErrNotExecutable, err))
		}
	}

	return errors.Join(errs...)
}
