// Package web exposes the load pipeline over HTTP.
package web

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/JonMunkholm/inspections/internal/config"
	"github.com/JonMunkholm/inspections/internal/etl"
	"github.com/JonMunkholm/inspections/internal/pipeline"
	"github.com/JonMunkholm/inspections/internal/store"
	webmw "github.com/JonMunkholm/inspections/internal/web/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Loader runs loads. Satisfied by *pipeline.Pipeline.
type Loader interface {
	Run(ctx context.Context, rows []etl.Row) (pipeline.Result, error)
	Status() pipeline.Status
}

// Database reports connectivity and table sizes. Satisfied by *store.DB.
type Database interface {
	Ping(ctx context.Context) error
	Counts(ctx context.Context) (store.TableCounts, error)
}

// Server is the HTTP server for the load API.
type Server struct {
	cfg    *config.Config
	loader Loader
	db     Database
	router *chi.Mux
	server *http.Server
}

// NewServer creates a Server with routes and middleware installed.
func NewServer(cfg *config.Config, loader Loader, db Database) *Server {
	s := &Server{
		cfg:    cfg,
		loader: loader,
		db:     db,
		router: chi.NewRouter(),
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// setupMiddleware configures middleware for all routes.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(webmw.TrustedRealIP(s.cfg.Security.TrustedProxies))
	s.router.Use(webmw.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(securityHeaders)
}

// setupRoutes configures all HTTP routes. Loads run under the pipeline's
// own deadline; everything else gets the request timeout.
func (s *Server) setupRoutes() {
	s.router.Handle("/metrics", promhttp.Handler())

	s.router.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(s.cfg.Server.RequestTimeout))
			r.Get("/health", s.handleHealth)
			r.Get("/stats", s.handleStats)
			r.Get("/loads/status", s.handleLoadStatus)
		})

		r.Group(func(r chi.Router) {
			r.Use(webmw.APIKeyAuth(s.cfg.Security))
			r.Post("/loads", s.handleLoad)
		})
	})
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start begins listening for HTTP requests. It returns http.ErrServerClosed
// after Shutdown.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
		IdleTimeout:  s.cfg.Server.IdleTimeout,
	}

	slog.Info("starting server", "addr", s.server.Addr)
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// securityHeaders adds security headers to all responses.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "no-referrer")
		w.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}

// writeJSON encodes v as JSON with the given status.
// Encoding errors are logged since headers are already sent.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json encode error", "error", err)
	}
}
