package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/SoySerhio507/Search-Filter/internal/suggest"
)

// Server exposes the suggestion service over HTTP.
type Server struct {
	svc    *suggest.Service
	server *http.Server
	logger zerolog.Logger
}

// NewServer creates an API server listening on addr.
func NewServer(addr string, svc *suggest.Service, logger zerolog.Logger) *Server {
	s := &Server{
		svc:    svc,
		logger: logger,
	}

	r := mux.NewRouter()

	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			logger.Debug().
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Msg("request received")
			next.ServeHTTP(w, req)
		})
	})

	r.HandleFunc("/healthz", s.health).Methods("GET")
	r.HandleFunc("/suggestions", s.suggestions).Methods("GET")
	r.HandleFunc("/words", s.listWords).Methods("GET")
	r.HandleFunc("/words", s.addWord).Methods("POST")

	// Default to all interfaces when only a port was given.
	if _, _, err := net.SplitHostPort(addr); err != nil {
		addr = "0.0.0.0:" + addr
	}

	s.server = &http.Server{
		Addr:    addr,
		Handler: r,
	}

	return s
}

// Handler returns the HTTP handler for the server
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Addr returns the address the server is configured to listen on
func (s *Server) Addr() string {
	return s.server.Addr
}

// Start listens and serves until Shutdown is called or the listener fails.
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.server.Addr, err)
	}

	s.logger.Info().Str("addr", listener.Addr().String()).Msg("server listening")

	if err := s.server.Serve(listener); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info().Msg("shutting down server")
	return s.server.Shutdown(ctx)
}

// Helper functions for HTTP responses
func (s *Server) respond(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, err error) {
	s.respond(w, status, map[string]string{"error": err.Error()})
}

// health handles GET /healthz
func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	s.respond(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"words":  s.svc.Len(),
	})
}

// suggestions handles GET /suggestions?prefix= - every stored word starting
// with the prefix. An empty prefix lists everything; an unmatched prefix is
// an empty result, not an error.
func (s *Server) suggestions(w http.ResponseWriter, r *http.Request) {
	prefix := r.URL.Query().Get("prefix")

	words := s.svc.Suggest(prefix)
	if words == nil {
		words = []string{}
	}

	s.respond(w, http.StatusOK, map[string]interface{}{
		"prefix":      prefix,
		"count":       len(words),
		"suggestions": words,
	})
}

// listWords handles GET /words - every stored word in tree pre-order
func (s *Server) listWords(w http.ResponseWriter, r *http.Request) {
	words := s.svc.Words()
	if words == nil {
		words = []string{}
	}

	s.respond(w, http.StatusOK, map[string]interface{}{
		"count": len(words),
		"words": words,
	})
}

type addWordRequest struct {
	Word string `json:"word"`
}

// addWord handles POST /words - store one word
func (s *Server) addWord(w http.ResponseWriter, r *http.Request) {
	var req addWordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	if err := s.svc.Add(req.Word); err != nil {
		s.respondError(w, http.StatusBadRequest, err)
		return
	}

	s.respond(w, http.StatusCreated, map[string]string{"word": req.Word})
}
