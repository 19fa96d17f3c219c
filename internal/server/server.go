// Package server exposes the session store over HTTP for companion tools.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/suderio/grimoire/internal/session"
)

// Server serves snapshot reads and intent dispatches as JSON endpoints.
type Server struct {
	store *session.Store
	log   zerolog.Logger
}

// NewHandler builds the HTTP routing tree around a session store.
func NewHandler(store *session.Store, log zerolog.Logger) http.Handler {
	s := &Server{store: store, log: log}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/healthz", s.health)
	r.Get("/api/session", s.getSession)
	r.Post("/api/intents", s.postIntent)

	return r
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) getSession(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Snapshot())
}

// postIntent decodes an intent envelope, applies it, and returns the
// resulting snapshot. Malformed envelopes and unknown discriminators are
// client errors; a no-op transition is still a 200.
func (s *Server) postIntent(w http.ResponseWriter, r *http.Request) {
	var env session.IntentEnvelope
	if err := json.NewDecoder(r.Body).Decode(&env); err != nil {
		writeError(w, http.StatusBadRequest, "invalid intent envelope")
		return
	}

	in, err := session.DecodeIntent(env)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	next := s.store.Dispatch(in)
	writeJSON(w, http.StatusOK, next)
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
