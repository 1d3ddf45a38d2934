// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package internal contains helpers shared by development tools.
package internal

import (
	"errors"
	"os"
	"path/filepath"
)

// ErrNoRepo is returned by [Root] outside of a Git repository.
var ErrNoRepo = errors.New("not inside a Git repository")

// Root returns the root of the Git repository containing the current
// directory, found by looking for a .git entry in it and its parents.
func Root() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNoRepo
		}
		dir = parent
	}
}
