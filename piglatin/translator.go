// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package piglatin

import (
	"bufio"
	"context"
	"errors"
	"io"
	"runtime"
	"strings"
	"sync/atomic"

	"github.com/go4org/hashtriemap"

	"go.astrophena.name/pig/syncx"
)

// DefaultCacheSize is the number of distinct words a [Translator] remembers
// when [Options.CacheSize] is zero.
const DefaultCacheSize = 1 << 16

// Options configure a [Translator].
type Options struct {
	// CacheSize is the maximum number of word translations kept in memory.
	// Zero means DefaultCacheSize, a negative value disables the cache.
	CacheSize int
	// Workers limits how many lines TranslateLines translates at once.
	// Zero means runtime.GOMAXPROCS(0).
	Workers int
}

// Translator translates text like [Translate] and remembers word
// translations, which pays off for natural text where a few words repeat a
// lot. It is safe for concurrent use.
type Translator struct {
	cache   hashtriemap.HashTrieMap[string, string]
	cached  atomic.Int64
	limit   int64
	workers int
}

// New returns a new Translator.
func New(opts Options) *Translator {
	t := &Translator{
		limit:   int64(opts.CacheSize),
		workers: opts.Workers,
	}
	if t.limit == 0 {
		t.limit = DefaultCacheSize
	}
	if t.workers <= 0 {
		t.workers = runtime.GOMAXPROCS(0)
	}
	return t
}

// Word translates a single word, see [TranslateWord].
func (t *Translator) Word(word string) string {
	if t.limit < 0 {
		return TranslateWord(word)
	}
	if v, ok := t.cache.Load(word); ok {
		return v
	}
	v := TranslateWord(word)
	// The cache stops growing at the limit; words seen early are the
	// frequent ones in natural text. A slot is reserved before storing, so
	// concurrent callers never push the cache past the limit.
	if t.cached.Load() >= t.limit {
		return v
	}
	if t.cached.Add(1) > t.limit {
		t.cached.Add(-1)
		return v
	}
	// Clone, so the cache does not pin the whole input text.
	if _, loaded := t.cache.LoadOrStore(strings.Clone(word), v); loaded {
		t.cached.Add(-1)
	}
	return v
}

// Translate translates text, see [Translate].
func (t *Translator) Translate(text string) string { return translate(text, t.Word) }

// CacheLen returns the number of cached word translations.
func (t *Translator) CacheLen() int { return int(t.cached.Load()) }

// TranslateLines translates every line concurrently and returns the
// translations in the same order. It stops early with the context's error if
// ctx is canceled.
func (t *Translator) TranslateLines(ctx context.Context, lines []string) ([]string, error) {
	out := make([]string, len(lines))
	lwg := syncx.NewLimitedWaitGroup(t.workers)
	for i, line := range lines {
		if ctx.Err() != nil {
			break
		}
		lwg.Go(func() { out[i] = t.Translate(line) })
	}
	lwg.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// TranslateReader reads r line by line and writes the translation of each
// line to w as soon as it is complete. Words never span lines, so the output
// is identical to translating all of r at once.
func (t *Translator) TranslateReader(ctx context.Context, r io.Reader, w io.Writer) error {
	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := br.ReadString('\n')
		if line != "" {
			if _, werr := bw.WriteString(t.Translate(line)); werr != nil {
				return werr
			}
			// Flush per line so interactive use sees output immediately.
			if werr := bw.Flush(); werr != nil {
				return werr
			}
		}
		if errors.Is(err, io.EOF) {
			return bw.Flush()
		}
		if err != nil {
			return err
		}
	}
}

// SplitLines splits text after every newline, so that joining the result
// gives back text.
func SplitLines(text string) []string {
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
