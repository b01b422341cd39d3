// Package api serves the page-view counter over HTTP.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/gyeh/clinicmap/internal/counter"
)

type viewsResponse struct {
	Views int64  `json:"views"`
	Env   string `json:"env,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
	Env   string `json:"env,omitempty"`
}

// Server holds the handler dependencies. A nil store means the counter
// backend was not configured; the views endpoints then answer with
// kv_missing_env.
type Server struct {
	store   counter.Store
	env     string
	log     zerolog.Logger
	metrics *Metrics
}

// NewServer returns a Server backed by store. A nil store is allowed and
// answers kv_missing_env.
func NewServer(store counter.Store, env string, log zerolog.Logger) *Server {
	return &Server{store: store, env: env, log: log, metrics: newMetrics()}
}

// Handler returns the routed mux.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.health)
	mux.HandleFunc("GET /api/views", s.getViews)
	mux.HandleFunc("POST /api/views", s.incrViews)
	mux.Handle("GET /metrics", s.metrics.handler())
	return logRequests(s.log, s.metrics, mux)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) getViews(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "kv_missing_env", Env: s.env})
		return
	}
	n, err := s.store.Get(r.Context())
	if err != nil {
		s.log.Error().Err(err).Msg("read view counter")
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "kv_error"})
		return
	}
	s.metrics.views.Set(float64(n))
	s.writeJSON(w, http.StatusOK, viewsResponse{Views: n, Env: s.env})
}

func (s *Server) incrViews(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "kv_missing_env", Env: s.env})
		return
	}
	n, err := s.store.Incr(r.Context())
	if err != nil {
		s.log.Error().Err(err).Msg("increment view counter")
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "kv_error"})
		return
	}
	s.metrics.views.Set(float64(n))
	s.writeJSON(w, http.StatusOK, viewsResponse{Views: n})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Warn().Err(err).Int("status", status).Msg("write response")
	}
}
