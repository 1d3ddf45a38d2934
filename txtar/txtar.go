// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package txtar extends [golang.org/x/tools/txtar] with helpers to move
// archives to and from directories. Tests use it for multi-file fixtures.
package txtar

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/tools/txtar"
)

// Archive is a collection of files.
type Archive = txtar.Archive

// File is a single file in an archive.
type File = txtar.File

// Parse parses the serialized form of an archive.
func Parse(data []byte) *Archive { return txtar.Parse(data) }

// ParseFile parses the named file as an archive.
func ParseFile(file string) (*Archive, error) { return txtar.ParseFile(file) }

// Format returns the serialized form of an archive.
func Format(a *Archive) []byte { return txtar.Format(a) }

// ErrUnsafePath is returned by [Extract] for names that would escape the
// target directory.
var ErrUnsafePath = errors.New("unsafe file name")

// Extract writes every file of the archive below dir, creating directories
// as needed. File names must be relative and stay inside dir.
func Extract(a *Archive, dir string) error {
	for _, f := range a.Files {
		if !filepath.IsLocal(f.Name) {
			return fmt.Errorf("%w: %q", ErrUnsafePath, f.Name)
		}
		path := filepath.Join(dir, filepath.FromSlash(f.Name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(path, f.Data, 0o644); err != nil {
			return err
		}
	}
	return nil
}

// FromDir builds an archive from the regular files below dir. Names use
// forward slashes and follow lexical order.
func FromDir(dir string) (*Archive, error) {
	ar := new(Archive)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		if !strings.HasSuffix(string(data), "\n") && len(data) > 0 {
			data = append(data, '\n')
		}
		ar.Files = append(ar.Files, File{Name: filepath.ToSlash(rel), Data: data})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ar, nil
}
