// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Package piglatin translates English text into Pig Latin.

Only one dialect is implemented:

  - Words starting with a consonant have the leading consonant cluster moved
    to the end, followed by "ay": "pigs" becomes "igspay".
  - Words starting with a vowel (a, e, i, o or u) keep their letters and get
    "hay" appended: "apple" becomes "applehay".
  - A leading "qu" moves as a single cluster: "quaint" becomes "aintquay".
  - The upper and lower case pattern of the original word is applied, letter
    by letter, to its translation: "Hello" becomes "Ellohay".

[Translate] is the general entry point. It splits text into words (runs of
characters that are neither ASCII punctuation nor whitespace), translates
them and keeps everything else, so layout and punctuation survive:

	piglatin.Translate("Hello world!") // "Ellohay orldway!"

[TranslateWord] translates a single word and is slightly faster, but gives
meaningless results for input containing separators.

A [Translator] adds a concurrent word cache and streaming over an
[io.Reader], which suits large inputs and servers.
*/
package piglatin
