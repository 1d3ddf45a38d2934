// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"slices"
	"strings"
	"time"

	"go.astrophena.name/pig/cli"
	"go.astrophena.name/pig/logger"
	"go.astrophena.name/pig/syncx"
	"go.astrophena.name/pig/version"
)

// Server is used to configure the HTTP server started by
// [Server.ListenAndServe].
//
// All fields of Server can't be modified after [Server.ListenAndServe] or
// [Server.ServeHTTP] is called for a first time.
type Server struct {
	// Mux is a http.ServeMux to serve.
	Mux *http.ServeMux
	// Middleware specifies an optional slice of HTTP middleware that's applied to
	// each request.
	Middleware []Middleware
	// Addr is a network address to listen on (in the form of "host:port").
	Addr string
	// Listener, if not nil, is used instead of listening on Addr.
	Listener net.Listener
	// Ready specifies an optional function to be called when the server is ready
	// to serve requests.
	Ready func()
	// CrossOriginProtection configures CSRF protection. Defaults are used if nil.
	CrossOriginProtection *http.CrossOriginProtection

	handler syncx.Lazy[http.Handler]
}

// ServeHTTP implements the [http.Handler] interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.Get(s.initHandler).ServeHTTP(w, r)
}

// The Content-Security-Policy header.
// Based on https://github.com/tailscale/tailscale/blob/4ad3f01225745294474f1ae0de33e5a86824a744/safeweb/http.go.
var cspHeader = strings.Join([]string{
	`default-src 'self'`,               // origin is the only valid source for all content types
	`script-src 'none'`,                // pages work without JavaScript
	`style-src 'self' 'unsafe-inline'`, // allow the inline stylesheet of pages
	`frame-ancestors 'none'`,           // disallow framing of the page
	`form-action 'self'`,               // disallow form submissions to other origins
	`base-uri 'self'`,                  // disallow base URIs from other origins
	`block-all-mixed-content`,          // disallow mixed content when serving over HTTPS
	`object-src 'none'`,                // disallow plugins
}, "; ")

var (
	errNoAddr = errors.New("server.Addr is empty")
	errListen = errors.New("failed to listen")
)

// Middleware wraps a handler.
type Middleware func(http.Handler) http.Handler

func setHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Referrer-Policy", "same-origin")
		w.Header().Set("Content-Security-Policy", cspHeader)
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	if sr.status == 0 {
		sr.status = code
	}
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	if sr.status == 0 {
		sr.status = http.StatusOK
	}
	return sr.ResponseWriter.Write(b)
}

func (sr *statusRecorder) Unwrap() http.ResponseWriter { return sr.ResponseWriter }

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sr := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(sr, r)
		if sr.status == 0 {
			sr.status = http.StatusOK
		}
		logger.Debug(r.Context(), "handled request",
			slog.String("method", r.Method),
			slog.String("url", r.URL.Path),
			slog.Int("status", sr.status),
			slog.Duration("duration", time.Since(start)),
		)
	})
}

func (s *Server) initHandler() http.Handler {
	if s.Mux == nil {
		panic("Server.Mux is nil")
	}

	// Initialize internal routes.
	s.Mux.HandleFunc("GET /version", func(w http.ResponseWriter, r *http.Request) { RespondJSON(w, version.Version()) })
	Health(s.Mux)

	csrf := s.CrossOriginProtection
	if csrf == nil {
		csrf = http.NewCrossOriginProtection()
	}
	csrf.SetDenyHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		RespondError(w, r, fmt.Errorf("%w: CSRF protection failed", ErrForbidden))
	}))

	// Apply middleware.
	var h http.Handler = csrf.Handler(s.Mux)
	mws := slices.Concat([]Middleware{logRequests, setHeaders}, s.Middleware)
	for _, middleware := range slices.Backward(mws) {
		h = middleware(h)
	}
	return h
}

// ListenAndServe starts the HTTP server that can be stopped by canceling ctx.
func (s *Server) ListenAndServe(ctx context.Context) error {
	env := cli.GetEnv(ctx)

	l := s.Listener
	if l == nil {
		if s.Addr == "" {
			return errNoAddr
		}
		var err error
		l, err = net.Listen("tcp", s.Addr)
		if err != nil {
			return fmt.Errorf("%w: %v", errListen, err)
		}
	}

	logger.Info(ctx, "listening for HTTP requests", slog.String("addr", "http://"+l.Addr().String()))

	httpSrv := &http.Server{
		ErrorLog:          log.New(logger.Logf(env.Logf), "", 0),
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return cli.WithEnv(context.WithoutCancel(ctx), env)
		},
	}

	errCh := make(chan error, 1)

	go func() {
		if err := httpSrv.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	if s.Ready != nil {
		s.Ready()
	}

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Info(ctx, "HTTP server gracefully shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return err
		}
	}

	return nil
}
