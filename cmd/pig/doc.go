// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Pig translates English text into Pig Latin.

Usage:

	$ pig [flags] [files...]

Pig reads the named files, or standard input if there are none, and writes
their translation to standard output. A file named "-" is standard input.
Whitespace and punctuation are kept as they are:

	$ echo 'Hello, world!' | pig
	Ellohay, orldway!

By default the whole input is read before anything is written. With the
-stream flag every line is translated and written as soon as it is read,
which is useful for interactive use.

With -remote, the text is sent to a pigweb server and translated there:

	$ pig -remote http://localhost:3000 < letter.txt
*/
package main

import (
	_ "embed"

	"go.astrophena.name/pig/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
