// Package api exposes the trigger surface: one POST endpoint per
// workflow rule plus a composite sweep, each taking no input beyond the
// trigger itself and returning a short human-readable status string.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mattjoyce/groundskeeper/internal/registry"
	"github.com/mattjoyce/groundskeeper/internal/rules"
)

// RuleRunner executes one rule across a workspace list.
type RuleRunner interface {
	Run(ctx context.Context, rule string, workspaces []registry.Workspace) ([]*rules.Report, error)
}

// WorkspaceSource supplies the current workspace list.
type WorkspaceSource interface {
	Load() []registry.Workspace
}

// Config holds trigger server configuration.
type Config struct {
	Listen string
}

// Server is the trigger HTTP server.
type Server struct {
	config    Config
	runner    RuleRunner
	source    WorkspaceSource
	logger    *slog.Logger
	server    *http.Server
	startedAt time.Time
}

// New creates a trigger server.
func New(config Config, runner RuleRunner, source WorkspaceSource, logger *slog.Logger) *Server {
	return &Server{
		config:    config,
		runner:    runner,
		source:    source,
		logger:    logger,
		startedAt: time.Now(),
	}
}

// Start starts the HTTP server (blocking).
func (s *Server) Start(ctx context.Context) error {
	router := s.setupRoutes()

	s.server = &http.Server{
		Addr:         s.config.Listen,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Minute, // rule passes walk every page of every workspace
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("trigger server starting", "listen", s.config.Listen)

	// Run server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Wait for context cancellation or server error
	select {
	case <-ctx.Done():
		s.logger.Info("trigger server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return ctx.Err()
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	}
}

// setupRoutes configures the HTTP router.
func (s *Server) setupRoutes() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.loggingMiddleware)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealthz)
	r.Post("/trigger/all", s.handleTriggerAll)
	r.Post("/trigger/{rule}", s.handleTrigger)

	return r
}

// loggingMiddleware logs HTTP requests.
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.logger.Info("trigger request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", middleware.GetReqID(r.Context()),
			"remote_addr", r.RemoteAddr,
		)
	})
}
