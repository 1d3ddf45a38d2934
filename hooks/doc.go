// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Package hooks loads, validates and runs Git hook declarations.

Declarations are read from a YAML list, usually the .pre-commit-hooks.yaml
file at the repository root, in the format understood by pre-commit style
hook runners:

	- id: gofmt
	  name: gofmt
	  description: Format Go source files.
	  entry: gofmt -l -w .
	  language: system
	  pass_filenames: false

Every hook runs a tool that is already installed on the system. Each hook is
independent of the others: they may run in any order or in parallel, and the
outcome of a run is just the exit status of every invoked command.
*/
package hooks
