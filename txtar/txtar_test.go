// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package txtar_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.astrophena.name/pig/testutil"
	"go.astrophena.name/pig/txtar"
)

func TestExtractAndFromDir(t *testing.T) {
	ar := txtar.Parse([]byte(`# fixture
-- .pre-commit-hooks.yaml --
- id: fmt
  entry: gofmt -l .
-- testdata/in.txt --
Hello world!
`))
	testutil.AssertEqual(t, string(ar.Comment), "# fixture\n")
	testutil.AssertEqual(t, len(ar.Files), 2)

	dir := t.TempDir()
	if err := txtar.Extract(ar, dir); err != nil {
		t.Fatalf("txtar.Extract(): %v", err)
	}

	got, err := os.ReadFile(filepath.Join(dir, "testdata", "in.txt"))
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, string(got), "Hello world!\n")

	back, err := txtar.FromDir(dir)
	if err != nil {
		t.Fatalf("txtar.FromDir(): %v", err)
	}
	testutil.AssertEqual(t, back.Files, ar.Files)
}

func TestExtractRejectsEscapingNames(t *testing.T) {
	for _, name := range []string{"../evil", "/etc/passwd", "a/../../b"} {
		ar := &txtar.Archive{Files: []txtar.File{{Name: name, Data: []byte("x\n")}}}
		if err := txtar.Extract(ar, t.TempDir()); !errors.Is(err, txtar.ErrUnsafePath) {
			t.Errorf("txtar.Extract(%q) error = %v, want %v", name, err, txtar.ErrUnsafePath)
		}
	}
}

func TestFromDirAddsTrailingNewline(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("no newline"), 0o644); err != nil {
		t.Fatal(err)
	}
	ar, err := txtar.FromDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, string(txtar.Format(ar)), "-- a.txt --\nno newline\n")
}
