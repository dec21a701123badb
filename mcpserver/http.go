// SPDX-License-Identifier: MIT
package mcpserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/katalvlaran/multiplet/edrun"
)

// HTTPHandler returns the auxiliary HTTP surface: liveness and run
// listing. It is independent of the MCP transport and safe to serve on a
// separate port.
func (s *Server) HTTPHandler() http.Handler {
	r := chi.NewRouter()
	r.Use(s.logRequests)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/v1/runs", func(w http.ResponseWriter, req *http.Request) {
		if s.store == nil {
			writeJSON(w, http.StatusOK, []edrun.RunRecord{})
			return
		}
		runs, err := s.store.List(req.Context())
		if err != nil {
			s.logger.Error("list runs", "error", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "registry unavailable"})
			return
		}
		if runs == nil {
			runs = []edrun.RunRecord{}
		}
		writeJSON(w, http.StatusOK, runs)
	})

	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, req)
		s.logger.Info("http request",
			"method", req.Method,
			"path", req.URL.Path,
			"duration", time.Since(start))
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
