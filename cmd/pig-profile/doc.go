// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Pig-profile translates a lot of generated text for profiling.

Usage:

	$ pig-profile [flags]

Every round generates pseudo-random lorem ipsum text, seeded with the round
number, and translates it into Pig Latin. The sizes of input and output are
printed as it goes. Combine it with the -cpuprofile and -memprofile flags:

	$ pig-profile -cpuprofile cpu.out
	$ go tool pprof cpu.out

For micro-benchmarks, run go test -bench . ./piglatin instead.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/pig/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
