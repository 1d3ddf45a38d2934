// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package hooks

import (
	"path/filepath"
	"testing"

	"go.astrophena.name/pig/testutil"
)

// TestRepositoryHooks checks the declarations this repository ships with.
func TestRepositoryHooks(t *testing.T) {
	decls, err := Load(filepath.Join("..", DefaultFile))
	if err != nil {
		t.Fatal(err)
	}

	var ids []string
	for _, d := range decls {
		ids = append(ids, d.ID)
		testutil.AssertEqual(t, d.Language, LanguageSystem)
		if d.Name == "" || d.Description == "" {
			t.Errorf("hook %q must have a name and a description", d.ID)
		}
	}
	testutil.AssertEqual(t, ids, []string{"fmt", "lint", "test", "doc"})

	if err := Validate(decls, fakeLookPath("go", "gofmt")); err != nil {
		t.Fatal(err)
	}
}
