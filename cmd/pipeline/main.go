package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/nguyentantai21042004/lecture-assistant/internal/config"
	"github.com/nguyentantai21042004/lecture-assistant/internal/gemini"
	"github.com/nguyentantai21042004/lecture-assistant/internal/lecture"
	"github.com/nguyentantai21042004/lecture-assistant/internal/logger"
	"github.com/nguyentantai21042004/lecture-assistant/internal/metrics"
	"github.com/nguyentantai21042004/lecture-assistant/internal/processor"
	"github.com/nguyentantai21042004/lecture-assistant/internal/watcher"
	"github.com/nguyentantai21042004/lecture-assistant/pkg/executor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.NewWithWriter(os.Stdout, cfg.Logging.Level, cfg.Logging.Format)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Lecture Assistant Pipeline")
	log.Info(ctx, "========================================")
	log.Info(ctx, "System: %s/%s", runtime.GOOS, runtime.GOARCH)
	log.Info(ctx, "Max Concurrent Processing: %d", cfg.Performance.MaxConcurrent)

	if err := config.LoadCredentials(cfg); err != nil {
		log.Error(ctx, "Failed to load credentials: %v", err)
		os.Exit(1)
	}

	// Verify required directories exist
	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// A missing key is not fatal: every request fails fast with a
	// configuration error instead.
	gen, err := gemini.New(ctx, gemini.Config{Model: cfg.Gemini.Model, APIKeys: cfg.Gemini.APIKeys}, log)
	if err != nil && !errors.Is(err, gemini.ErrMissingCredential) {
		log.Error(ctx, "Failed to create Gemini client: %v", err)
		os.Exit(1)
	}

	// Initialize dependencies
	assistant := lecture.New(cfg, gen, log, m)
	exec := executor.New()
	proc := processor.New(cfg, exec, assistant, log, m)

	// Create watcher with processor as handler and concurrency control
	w, err := watcher.New(cfg.Paths.Input, proc.Process, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	// Create context with cancellation
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 2)

	var srv *http.Server
	if cfg.Metrics.Addr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		srv = &http.Server{Addr: cfg.Metrics.Addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errChan <- fmt.Errorf("metrics server: %w", err)
			}
		}()
	}

	// Start watcher in goroutine; done closes once in-flight recordings finish
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			errChan <- err
		}
	}()

	log.Info(ctx, "========================================")
	log.Info(ctx, "Lecture Pipeline is ready!")
	log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Model: %s (%d key(s))", cfg.Gemini.Model, len(cfg.Gemini.APIKeys))
	log.Info(ctx, "Retry: %d retries from %s", cfg.Retry.MaxRetries, cfg.Retry.InitialDelay)
	if cfg.Metrics.Addr != "" {
		log.Info(ctx, "Metrics: http://%s/metrics", cfg.Metrics.Addr)
	}
	log.Info(ctx, "")
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")

	// Wait for shutdown signal or error
	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Pipeline error: %v", err)
	}

	// Graceful shutdown
	log.Info(ctx, "Shutting down gracefully...")
	cancel()
	<-done

	if srv != nil {
		shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
		defer stop()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn(ctx, "Metrics server shutdown: %v", err)
		}
	}

	log.Info(ctx, "Lecture Pipeline stopped")
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Archived,
		cfg.Paths.Temp,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
