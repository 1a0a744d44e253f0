package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/nahidhasan98/standup-summarizer/internal/config"
	"github.com/nahidhasan98/standup-summarizer/internal/handlers"
	"github.com/nahidhasan98/standup-summarizer/internal/logger"
	"github.com/nahidhasan98/standup-summarizer/internal/middleware"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	handler    *handlers.Handler
	middleware *middleware.Middleware
	log        *logger.Logger
}

// New creates a new HTTP server
func New(handler *handlers.Handler, log *logger.Logger) *Server {
	return &Server{
		handler:    handler,
		middleware: middleware.New(log),
		log:        log,
	}
}

// Start starts the HTTP server
func (s *Server) Start(cfg *config.Config) error {
	mux := http.NewServeMux()

	// Register routes
	mux.HandleFunc("/health", s.handler.HealthCheck)
	mux.HandleFunc("/repos", s.handler.ListRepos)
	mux.HandleFunc("/branches", s.handler.ListBranches)
	mux.HandleFunc("/commits/today", s.handler.CommitsToday)
	mux.HandleFunc("/commits/by-date", s.handler.CommitsByDate)
	mux.HandleFunc("/commits/from-repos", s.handler.CommitsFromRepos)
	mux.HandleFunc("/commits/summary/by-repos", s.handler.SummarizeCommits)

	// Apply middleware chain
	handler := s.middleware.Recovery(mux)
	handler = s.middleware.Logging(handler)
	handler = s.middleware.Security(handler)
	handler = s.middleware.CORS(handler)
	handler = s.middleware.RateLimit(handler)

	s.httpServer = &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	s.log.Infof("HTTP server listening on %s", cfg.Server.Address())

	// Start server in a goroutine
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.log.Fatal("HTTP server error", err)
		}
	}()

	return nil
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	s.log.Info("HTTP server shutdown complete")
	return nil
}
