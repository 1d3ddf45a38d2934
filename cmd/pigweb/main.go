// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"go.astrophena.name/pig/cli"
	"go.astrophena.name/pig/logger"
	"go.astrophena.name/pig/piglatin"
	"go.astrophena.name/pig/systemd"
	"go.astrophena.name/pig/web"
)

func main() { cli.Main(new(app)) }

type app struct {
	addr      string
	socket    string
	cacheSize int

	t *piglatin.Translator
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.StringVar(&a.addr, "addr", "localhost:3000", "Listen on `host:port`.")
	fs.StringVar(&a.socket, "socket", "", "Serve on the systemd activated socket with `name` instead of -addr.")
	fs.IntVar(&a.cacheSize, "cache", piglatin.DefaultCacheSize, "Remember up to `n` word translations. Negative disables the cache.")
}

func (a *app) Run(ctx context.Context) error {
	s := &web.Server{
		Mux:  a.mux(),
		Addr: a.addr,
		Ready: func() {
			if err := systemd.Notify(ctx, systemd.Ready); err != nil {
				logger.Warn(ctx, "notifying systemd failed", slog.Any("err", err))
			}
			systemd.Watchdog(ctx)
		},
	}
	if a.socket != "" {
		l, err := systemd.Socket(ctx, a.socket)
		if err != nil {
			return err
		}
		s.Listener = l
	}

	err := s.ListenAndServe(ctx)
	if nerr := systemd.Notify(ctx, systemd.Stopping); nerr != nil {
		logger.Warn(ctx, "notifying systemd failed", slog.Any("err", nerr))
	}
	return err
}

func (a *app) mux() *http.ServeMux {
	if a.t == nil {
		a.t = piglatin.New(piglatin.Options{CacheSize: a.cacheSize})
	}

	mux := http.NewServeMux()
	mux.Handle("GET /{$}", templ.Handler(translatePage("", "")))
	mux.HandleFunc("POST /{$}", a.handleForm)
	mux.Handle("POST /api/translate", web.HandleJSON(a.handleTranslate))

	web.Health(mux).RegisterFunc("translator", func() (string, bool) {
		return fmt.Sprintf("%d words cached", a.t.CacheLen()), true
	})
	return mux
}

func (a *app) handleForm(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, web.MaxBodySize)
	if err := r.ParseForm(); err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			web.RespondError(w, r, fmt.Errorf("%w: %v", web.ErrContentTooLarge, err))
			return
		}
		web.RespondError(w, r, fmt.Errorf("%w: %v", web.ErrBadRequest, err))
		return
	}
	text := r.PostForm.Get("text")
	translation := a.t.Translate(text)
	logger.Debug(r.Context(), "translated form", slog.Int("bytes", len(text)))
	templ.Handler(translatePage(text, translation)).ServeHTTP(w, r)
}

type translateRequest struct {
	Text *string `json:"text"`
}

var errNoText = errors.New("text is required")

func (req translateRequest) Validate() error {
	if req.Text == nil {
		return errNoText
	}
	return nil
}

type translateResponse struct {
	Translation string `json:"translation"`
}

func (a *app) handleTranslate(r *http.Request, req translateRequest) (translateResponse, error) {
	return translateResponse{Translation: a.t.Translate(*req.Text)}, nil
}
