// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package lipsum generates deterministic lorem ipsum text for benchmarks and
// profiling.
package lipsum

import (
	"math/rand/v2"
	"strings"
)

var words = strings.Fields(`
lorem ipsum dolor sit amet consectetur adipiscing elit sed do eiusmod tempor
incididunt ut labore et dolore magna aliqua enim ad minim veniam quis nostrud
exercitation ullamco laboris nisi aliquip ex ea commodo consequat duis aute
irure in reprehenderit voluptate velit esse cillum fugiat nulla pariatur
excepteur sint occaecat cupidatat non proident sunt culpa qui officia deserunt
mollit anim id est laborum quaerat quisquam quoniam quidem stultitia
praesentium blanditiis molestias excepturi necessitatibus saepe eveniet
`)

// Generate returns n words of lorem ipsum text. The same seed always yields
// the same text.
//
// Words are grouped into sentences of 4 to 18 words, which start with a
// capital letter, may contain commas and end with a period, question mark or
// exclamation mark. Every few sentences start a new paragraph.
func Generate(seed uint64, n int) string {
	if n <= 0 {
		return ""
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	var sb strings.Builder
	sb.Grow(n * 7)

	var (
		left      int // words left in the current sentence
		sentences int
	)
	for i := range n {
		w := words[rng.IntN(len(words))]
		if left == 0 {
			left = 4 + rng.IntN(15)
			if i > 0 {
				sentences++
				if sentences%6 == 0 {
					sb.WriteString("\n\n")
				} else {
					sb.WriteByte(' ')
				}
			}
			w = strings.ToUpper(w[:1]) + w[1:]
		} else {
			sb.WriteByte(' ')
		}
		sb.WriteString(w)

		left--
		switch {
		case left == 0 || i == n-1:
			sb.WriteByte(terminator(rng))
			left = 0
		case left > 2 && rng.IntN(10) == 0:
			sb.WriteByte(',')
		}
	}
	return sb.String()
}

func terminator(rng *rand.Rand) byte {
	switch rng.IntN(10) {
	case 0:
		return '?'
	case 1:
		return '!'
	}
	return '.'
}
