// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package piglatin

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	suffix      = "ay"
	vowelSuffix = "hay"
)

// Translate translates arbitrary English text into Pig Latin.
//
// Whitespace, punctuation and layout are preserved; only words are
// translated (see [TranslateWord]).
func Translate(text string) string { return translate(text, TranslateWord) }

func translate(text string, word func(string) string) string {
	var b strings.Builder
	// Translations are slightly longer than their input.
	b.Grow(len(text) + len(text)*3/10)

	start := -1
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if isSeparator(r) {
			if start >= 0 {
				b.WriteString(word(text[start:i]))
				start = -1
			}
			b.WriteString(text[i : i+size])
		} else if start < 0 {
			start = i
		}
		i += size
	}
	if start >= 0 {
		b.WriteString(word(text[start:]))
	}
	return b.String()
}

// TranslateWord translates a single English word into Pig Latin.
//
// The input is assumed to be one word without whitespace or punctuation; this
// is not checked. Use [Translate] for anything else. An empty word
// translates to an empty string.
func TranslateWord(word string) string {
	if word == "" {
		return ""
	}
	first, _ := utf8.DecodeRuneInString(word)
	if isVowel(first) {
		return word + vowelSuffix
	}
	cut := consonantPrefixLen(word)
	return applyCasing(word[cut:]+word[:cut]+suffix, word)
}

// consonantPrefixLen returns the length in bytes of the leading consonant
// cluster of word, counting the "u" of a leading "qu" as part of it.
func consonantPrefixLen(word string) int {
	cut := strings.IndexFunc(word, isVowel)
	if cut < 0 {
		return len(word)
	}
	if cut == 1 && (word[0] == 'q' || word[0] == 'Q') && (word[1] == 'u' || word[1] == 'U') {
		cut++
	}
	return cut
}

// isVowel reports whether r is an ASCII vowel, ignoring case.
func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'A', 'E', 'I', 'O', 'U':
		return true
	}
	return false
}

// isSeparator reports whether r ends a word.
func isSeparator(r rune) bool {
	return isASCIIPunct(r) || unicode.IsSpace(r)
}

func isASCIIPunct(r rune) bool {
	return r >= '!' && r <= '/' ||
		r >= ':' && r <= '@' ||
		r >= '[' && r <= '`' ||
		r >= '{' && r <= '~'
}
