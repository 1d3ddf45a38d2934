// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Pre-commit installs and runs a Git pre-commit hook.

Usage:

	$ pre-commit [flags] [files...]

On its first run in a non-CI environment, it automatically creates the
.git/hooks/pre-commit script. This script simply calls 'go tool pre-commit'
again, ensuring that the hooks are run on every subsequent commit.

Hooks are declared in the .pre-commit-hooks.yaml file in the root of the
repository. The file is a YAML list of hook declarations, each with the
following fields:

  - id: A unique short name of the hook.
  - name: A human readable name, shown while the hook runs.
  - description: Free text describing what the hook does.
  - entry: The command to run, split into words like a shell would
    (e.g., "go test ./...").
  - language: How the hook is executed. Only "system" is supported, which
    runs the already installed command.
  - pass_filenames: Whether the changed files are appended to the command.
    Defaults to true.
  - skip_in_ci: If true, the hook is skipped when the CI environment
    variable is set to "true".
  - only_in_ci: If true, the hook runs only when the CI environment variable
    is set to "true".

Unknown fields are rejected. Before anything runs, every declaration is
validated: identifiers must be unique and the first word of every entry
must be an installed executable. Use the -check flag to only validate.

Files passed as arguments are given to hooks that accept file names. Without
arguments, the files staged for commit are used.

Every hook runs even if another one fails. The output of a failed hook is
printed together with its exit status, and pre-commit exits with a non-zero
status.

Hooks that rewrite files, like 'gofmt -w', also fail the run: tracked files
that differ from the index are compared before and after the hooks, and any
file a hook changed is listed so it can be reviewed and staged again.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/pig/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
