// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package web

import (
	"net/http"
	"slices"
	"sync"

	"github.com/go4org/hashtriemap"
)

// HealthFunc reports the status of a component and whether it is healthy.
type HealthFunc func() (status string, ok bool)

// HealthHandler serves a JSON health report built from registered checks.
type HealthHandler struct {
	mu     sync.Mutex
	names  []string
	checks map[string]HealthFunc
}

// HealthResponse is the body of a health report.
type HealthResponse struct {
	OK     bool                   `json:"ok"`
	Checks map[string]CheckResult `json:"checks,omitempty"`
}

// CheckResult is the outcome of a single health check.
type CheckResult struct {
	Status string `json:"status"`
	OK     bool   `json:"ok"`
}

var healthHandlers hashtriemap.HashTrieMap[*http.ServeMux, *HealthHandler]

// Health returns the health handler of mux, registering it at GET /health
// on first use.
func Health(mux *http.ServeMux) *HealthHandler {
	h, loaded := healthHandlers.LoadOrStore(mux, new(HealthHandler))
	if !loaded {
		mux.Handle("GET /health", h)
	}
	return h
}

// RegisterFunc adds a named check. Registering a name twice replaces the
// previous check.
func (h *HealthHandler) RegisterFunc(name string, f HealthFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.checks == nil {
		h.checks = make(map[string]HealthFunc)
	}
	if _, ok := h.checks[name]; !ok {
		h.names = append(h.names, name)
	}
	h.checks[name] = f
}

func (h *HealthHandler) report() HealthResponse {
	h.mu.Lock()
	names := slices.Clone(h.names)
	checks := make(map[string]HealthFunc, len(h.checks))
	for k, v := range h.checks {
		checks[k] = v
	}
	h.mu.Unlock()

	resp := HealthResponse{OK: true}
	for _, name := range names {
		status, ok := checks[name]()
		if resp.Checks == nil {
			resp.Checks = make(map[string]CheckResult, len(names))
		}
		resp.Checks[name] = CheckResult{Status: status, OK: ok}
		resp.OK = resp.OK && ok
	}
	return resp
}

// ServeHTTP implements the [http.Handler] interface.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := h.report()
	if !resp.OK {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		respondJSON(w, resp, true)
		return
	}
	RespondJSON(w, resp)
}
