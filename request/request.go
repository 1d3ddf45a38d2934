// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package request makes requests to JSON APIs, like the ones served by the
// web package.
package request

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Params defines the parameters needed for making an HTTP request.
type Params struct {
	// Method is the HTTP method (GET, POST, etc.) for the request.
	Method string
	// URL is the target URL of the request.
	URL string
	// Headers is a map of key-value pairs for additional request headers.
	Headers map[string]string
	// Body, if not nil, is marshaled to JSON and sent as the request body.
	Body any
	// HTTPClient is an optional custom http.Client to use for the request.
	// If not provided, DefaultClient will be used.
	HTTPClient *http.Client
}

// DefaultClient is the default [http.Client] used by [Make].
//
// It has a timeout of 30 seconds to prevent requests from hanging indefinitely.
var DefaultClient = &http.Client{
	Timeout: 30 * time.Second,
}

// StatusError represents an error where an HTTP request returned
// an unexpected status code.
type StatusError struct {
	// StatusCode is the actual HTTP status code received in the response.
	StatusCode int
	// Message is the error reported by the server in a JSON error response,
	// or the raw response body.
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.Message)
}

// Make sends an HTTP request and decodes the JSON response body into a value
// of type Response. Responses with a status other than 200 OK are returned
// as a *[StatusError].
func Make[Response any](ctx context.Context, p Params) (Response, error) {
	var resp Response

	var body io.Reader
	if p.Body != nil {
		data, err := json.Marshal(p.Body)
		if err != nil {
			return resp, err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, p.Method, p.URL, body)
	if err != nil {
		return resp, err
	}
	for k, v := range p.Headers {
		req.Header.Set(k, v)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	httpc := DefaultClient
	if p.HTTPClient != nil {
		httpc = p.HTTPClient
	}

	res, err := httpc.Do(req)
	if err != nil {
		return resp, err
	}
	defer res.Body.Close()

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return resp, err
	}

	if res.StatusCode != http.StatusOK {
		return resp, fmt.Errorf("%s %q: %w", p.Method, p.URL, &StatusError{
			StatusCode: res.StatusCode,
			Message:    errorMessage(b),
		})
	}

	if err := json.Unmarshal(b, &resp); err != nil {
		return resp, fmt.Errorf("%s %q: decoding response: %w", p.Method, p.URL, err)
	}
	return resp, nil
}

func errorMessage(body []byte) string {
	var er struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(body, &er) == nil && er.Error != "" {
		return er.Error
	}
	return string(bytes.TrimSpace(body))
}
