// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package piglatin

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type letterCase uint8

const (
	caseNone letterCase = iota
	caseLower
	caseUpper
)

// caseOf classifies r by the Unicode Lowercase and Uppercase properties,
// which also cover letter-like symbols such as "ⓐ". Titlecase letters like
// "ǅ" are neither.
func caseOf(r rune) letterCase {
	switch {
	case unicode.In(r, unicode.Lower, unicode.Other_Lowercase):
		return caseLower
	case unicode.In(r, unicode.Upper, unicode.Other_Uppercase):
		return caseUpper
	}
	return caseNone
}

// applyCasing returns text with the case pattern of like applied to it,
// position by position. Once like runs out, its last rune's case is used for
// the rest of text. Where like has a rune without case, text is left alone;
// every other rune of text is mapped to the target case, so titlecase
// letters become upper or lower case too. Invalid UTF-8 is kept as is.
func applyCasing(text, like string) string {
	var (
		b      strings.Builder
		target = caseNone
		done   int // end of the part of text already written to b
	)
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if like != "" {
			lr, lsize := utf8.DecodeRuneInString(like)
			like = like[lsize:]
			target = caseOf(lr)
		}
		if target != caseNone && caseOf(r) != target && !(r == utf8.RuneError && size == 1) {
			if conv := convertCase(r, target); conv != text[i:i+size] {
				if b.Len() == 0 {
					b.Grow(len(text) + 2)
				}
				b.WriteString(text[done:i])
				b.WriteString(conv)
				done = i + size
			}
		}
		i += size
	}
	if done == 0 {
		return text
	}
	b.WriteString(text[done:])
	return b.String()
}

// convertCase converts r to c. Some runes expand when converted, for
// example "ß" becomes "SS".
func convertCase(r rune, c letterCase) string {
	if r < utf8.RuneSelf {
		switch {
		case c == caseUpper && 'a' <= r && r <= 'z':
			r -= 'a' - 'A'
		case c == caseLower && 'A' <= r && r <= 'Z':
			r += 'a' - 'A'
		}
		return string(r)
	}
	// A Caser keeps state, so it must not be shared between goroutines.
	if c == caseUpper {
		return cases.Upper(language.Und).String(string(r))
	}
	return cases.Lower(language.Und).String(string(r))
}
