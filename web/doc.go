// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Package web provides a small set of helpers for building web services.

# Key types and functions

  - [Server]: an HTTP server with middleware, security headers, CSRF
    protection, request logging and graceful shutdown.
  - [HandleJSON]: a wrapper for JSON APIs that decodes, validates and
    encodes request and response bodies.
  - [RespondJSON], [RespondJSONError] and [RespondError]: consistent JSON and
    HTML responses, with status codes taken from [StatusErr] errors.
  - [Health]: a health check handler served at /health.

Every [Server] also serves build information at /version.

# Usage

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "Hello, world!")
	})

	s := &web.Server{
		Mux:  mux,
		Addr: ":8080",
	}

	if err := s.ListenAndServe(ctx); err != nil {
		log.Fatal(err)
	}
*/
package web
