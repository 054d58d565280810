// Package server exposes outline extraction and persona-driven
// document analysis over HTTP.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/docpeek/docpeek/internal/ai"
	"github.com/docpeek/docpeek/internal/outline"
	"github.com/docpeek/docpeek/internal/persona"
)

// Config configures the HTTP service.
type Config struct {
	// MaxUploadSize caps the accepted document size in bytes
	// (default: 50 MB).
	MaxUploadSize int64

	// Personas is the available persona set (default: built-ins).
	Personas map[string]persona.Persona

	// Analyzer runs the model call for /api/analyze (default: no-op).
	Analyzer ai.Analyzer

	// Extraction overrides the outline heuristics; usually left zero.
	Extraction outline.Config

	// Logger for request and error logging.
	Logger *slog.Logger
}

func (c *Config) defaults() {
	if c.MaxUploadSize <= 0 {
		c.MaxUploadSize = 50 << 20
	}
	if c.Personas == nil {
		c.Personas = persona.Defaults()
	}
	if c.Analyzer == nil {
		c.Analyzer = ai.Noop{}
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// Server handles the HTTP surface. All document state is per-request;
// the embedded extractor is immutable and shared.
type Server struct {
	cfg       Config
	logger    *slog.Logger
	extractor *outline.Extractor
}

// New creates a Server with the given configuration.
func New(cfg Config) *Server {
	cfg.defaults()
	return &Server{
		cfg:       cfg,
		logger:    cfg.Logger,
		extractor: outline.New(cfg.Extraction),
	}
}

// Router builds the HTTP routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Get("/api/personas", s.handlePersonas)
	r.Post("/api/outline", s.handleOutline)
	r.Post("/api/analyze", s.handleAnalyze)
	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()))
	})
}
