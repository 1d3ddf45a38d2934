// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"go.astrophena.name/pig/cli"
	"go.astrophena.name/pig/logger"
	"go.astrophena.name/pig/piglatin"
	"go.astrophena.name/pig/request"
)

func main() { cli.Main(new(app)) }

type app struct {
	stream    bool
	cacheSize int
	workers   int
	remote    string
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.BoolVar(&a.stream, "stream", false, "Translate and print input line by line.")
	fs.IntVar(&a.cacheSize, "cache", piglatin.DefaultCacheSize, "Remember up to `n` word translations. Negative disables the cache.")
	fs.IntVar(&a.workers, "workers", 0, "Translate up to `n` lines at once. Zero means the number of CPUs.")
	fs.StringVar(&a.remote, "remote", "", "Translate with the pigweb server at `URL` instead of locally.")
}

func (a *app) Run(ctx context.Context) error {
	if a.stream && a.remote != "" {
		return fmt.Errorf("%w: -stream and -remote can't be used together", cli.ErrInvalidArgs)
	}

	env := cli.GetEnv(ctx)
	t := piglatin.New(piglatin.Options{CacheSize: a.cacheSize, Workers: a.workers})

	inputs := env.Args
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}
	for _, name := range inputs {
		if err := a.translate(ctx, t, name); err != nil {
			return err
		}
	}

	logger.Debug(ctx, "done", slog.Int("files", len(inputs)), slog.Int("cached_words", t.CacheLen()))
	return nil
}

func (a *app) translate(ctx context.Context, t *piglatin.Translator, name string) error {
	env := cli.GetEnv(ctx)

	var r io.Reader = env.Stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	if a.stream {
		return t.TranslateReader(ctx, r, env.Stdout)
	}

	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if a.remote != "" {
		return a.translateRemote(ctx, string(b))
	}
	lines, err := t.TranslateLines(ctx, piglatin.SplitLines(string(b)))
	if err != nil {
		return err
	}
	logger.Debug(ctx, "translated input",
		slog.String("name", name),
		slog.Int("lines", len(lines)),
		slog.Int("bytes", len(b)),
	)
	_, err = io.WriteString(env.Stdout, strings.Join(lines, ""))
	return err
}

type translateRequest struct {
	Text string `json:"text"`
}

type translateResponse struct {
	Translation string `json:"translation"`
}

func (a *app) translateRemote(ctx context.Context, text string) error {
	resp, err := request.Make[translateResponse](ctx, request.Params{
		Method: http.MethodPost,
		URL:    strings.TrimSuffix(a.remote, "/") + "/api/translate",
		Body:   translateRequest{Text: text},
	})
	if err != nil {
		return err
	}
	_, err = io.WriteString(cli.GetEnv(ctx).Stdout, resp.Translation)
	return err
}
