package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/nahidhasan98/standup-summarizer/internal/config"
	"github.com/nahidhasan98/standup-summarizer/internal/gemini"
	"github.com/nahidhasan98/standup-summarizer/internal/github"
	"github.com/nahidhasan98/standup-summarizer/internal/handlers"
	"github.com/nahidhasan98/standup-summarizer/internal/logger"
	"github.com/nahidhasan98/standup-summarizer/internal/server"
	"github.com/nahidhasan98/standup-summarizer/internal/standup"
)

// Global variables for configuration and services
var (
	cfg     *config.Config
	log     *logger.Logger
	svc     *standup.Service
	errChan = make(chan error, 1)
)

func main() {
	// Create a context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup

	// Initialize configuration and services
	if err := initialize(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Initialization error: %v\n", err)
		os.Exit(1)
	}

	// Start the web server
	startWebServer(ctx, &wg)

	// Handle shutdown signals
	waitForShutdown(cancel, &wg)
}

func initialize(ctx context.Context) error {
	var err error

	// Load configuration; a missing Gemini key fails here, not on the
	// first summary request
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	log = logger.New(cfg.Log.Level, cfg.Log.Format)
	log.Info("Starting Standup Summarizer Application")

	// Initialize clients
	gitHost := github.NewClient(cfg.GitHub.BaseURL, log)

	aiClient, err := gemini.NewClient(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, log)
	if err != nil {
		return fmt.Errorf("failed to create Gemini client: %w", err)
	}

	svc = standup.New(gitHost, aiClient, log)

	return nil
}

func startWebServer(ctx context.Context, wg *sync.WaitGroup) {
	wg.Go(func() {
		log.Info("Starting HTTP server...")

		httpHandler := handlers.New(svc, log)

		httpServer := server.New(httpHandler, log)
		if err := httpServer.Start(cfg); err != nil {
			errChan <- fmt.Errorf("failed to start HTTP server: %w", err)
			return
		}

		// Keep the server running until shutdown
		<-ctx.Done()
		log.Info("HTTP server shutting down...")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer shutdownCancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Error("Error during HTTP server shutdown", err)
		}
	})
}

func waitForShutdown(cancel context.CancelFunc, wg *sync.WaitGroup) {
	// Wait for the server to fail or for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		log.Error("Service failed", err)
	case <-sigChan:
		log.Info("Received shutdown signal")
	}

	cancel()
	wg.Wait()

	log.Info("Application stopped")
}
