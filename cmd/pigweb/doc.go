// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Pigweb serves a Pig Latin translator over HTTP.

Usage:

	$ pigweb [flags]

The root page has a form that translates the submitted text. Programs can use
the JSON API instead:

	$ curl -d '{"text": "Hello, world!"}' localhost:3000/api/translate
	{
	  "translation": "Ellohay, orldway!"
	}

Build information is served at /version and a health report, including the
size of the word cache, at /health.

When started by systemd, pigweb reports readiness with sd-notify and pings
the watchdog if it is enabled. With -socket it serves on a socket passed by
socket activation, selected by its FileDescriptorName=.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/pig/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
