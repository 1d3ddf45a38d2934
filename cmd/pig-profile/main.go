// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"time"

	"go.astrophena.name/pig/cli"
	"go.astrophena.name/pig/internal/lipsum"
	"go.astrophena.name/pig/logger"
	"go.astrophena.name/pig/piglatin"
)

func main() { cli.Main(new(app)) }

type app struct {
	words  int
	rounds int
	cached bool
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.IntVar(&a.words, "words", 4_000_000, "Generate `n` words of input per round.")
	fs.IntVar(&a.rounds, "rounds", 20, "Translate `n` inputs.")
	fs.BoolVar(&a.cached, "cached", false, "Translate with a caching Translator instead of Translate.")
}

func (a *app) Run(ctx context.Context) error {
	if a.words < 0 || a.rounds < 0 {
		return fmt.Errorf("%w: -words and -rounds must not be negative", cli.ErrInvalidArgs)
	}

	env := cli.GetEnv(ctx)

	translate := piglatin.Translate
	if a.cached {
		translate = piglatin.New(piglatin.Options{}).Translate
	}

	var totalIn, totalOut int
	start := time.Now()
	for i := range a.rounds {
		if err := ctx.Err(); err != nil {
			return err
		}
		input := lipsum.Generate(uint64(i), a.words)
		totalIn += len(input)
		fmt.Fprintf(env.Stdout, "passing %d bytes to translate ...\n", len(input))

		roundStart := time.Now()
		result := translate(input)
		logger.Debug(ctx, "round done", slog.Int("round", i), slog.Duration("duration", time.Since(roundStart)))

		fmt.Fprintf(env.Stdout, "... translated into %d bytes\n", len(result))
		totalOut += len(result)
	}
	fmt.Fprintf(env.Stdout, "translated %d UTF8 bytes into %d UTF8 bytes\n", totalIn, totalOut)
	logger.Debug(ctx, "profiling done", slog.Duration("duration", time.Since(start)))
	return nil
}
