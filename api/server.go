// Package api - Thin HTTP layer over the pricing engine
// The API is ONLY responsible for: input ingestion, engine
// orchestration, output serialization. The API NEVER performs pricing
// logic.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"contractor-quote/core/quote"
	"contractor-quote/db"
	"contractor-quote/internal/logging"
)

// Server is the API server
type Server struct {
	router  chi.Router
	pricer  *quote.Pricer
	store   *db.Store
	version string
}

// NewServer creates an API server. store may be nil; catalog and saved
// quote endpoints then respond 503.
func NewServer(version string, pricer *quote.Pricer, store *db.Store) *Server {
	s := &Server{
		pricer:  pricer,
		store:   store,
		version: version,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)

	r.Get("/health", s.handleHealth)
	r.Get("/version", s.handleVersion)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/price", s.handlePrice)
		r.Post("/quote", s.handleQuote)

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/", s.handleListItems)
			r.Post("/", s.handleSaveItem)
			r.Get("/{id}", s.handleGetItem)
			r.Put("/{id}", s.handleSaveItem)
			r.Delete("/{id}", s.handleDeleteItem)
		})

		r.Route("/quotes", func(r chi.Router) {
			r.Get("/", s.handleListQuotes)
			r.Post("/", s.handleSaveQuote)
			r.Get("/{id}", s.handleGetQuote)
		})
	})

	s.router = r
	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "healthy",
		"version": s.version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"version":     s.version,
		"engine":      "contractor-quote",
		"api_version": "v1",
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Error("write response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, code, message string) {
	s.writeJSON(w, status, ErrorResponse{
		Error: ErrorBody{Code: code, Message: message},
	})
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		logging.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}
