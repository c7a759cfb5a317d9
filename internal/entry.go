// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/starford/journal/internal/api"
	"github.com/starford/journal/internal/apperr"
	"github.com/starford/journal/internal/index"
	"github.com/starford/journal/internal/loader"
	"github.com/starford/journal/internal/sse"
	"github.com/starford/journal/internal/storage"
)

func newApplication(opts []Option) (*application, error) {
	app := &application{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(app)
	}
	if app.config == nil {
		return nil, fmt.Errorf("config is required")
	}
	return app, nil
}

// newLogger builds the structured JSON logger and installs it as default.
func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}

// newLoader opens the content root and builds the feed loader over it.
// A missing or unreadable root is a discovery failure.
func newLoader(cfg *ContentConfig) (*storage.FS, *loader.Loader, error) {
	store, err := storage.NewFS(cfg.Root)
	if err != nil {
		return nil, nil, &apperr.DiscoveryError{Op: "open", Path: cfg.Root, Err: err}
	}
	ld, err := loader.New(store, cfg.LoaderOptions())
	if err != nil {
		return nil, nil, fmt.Errorf("init loader: %w", err)
	}
	return store, ld, nil
}

// publishChanges forwards snapshot changes to SSE clients.
func publishChanges(broker *sse.Broker, ch index.Changes) {
	for _, u := range ch.Added {
		broker.PublishItemEvent(sse.KindAdded, u)
	}
	for _, u := range ch.Updated {
		broker.PublishItemEvent(sse.KindUpdated, u)
	}
	for _, u := range ch.Removed {
		broker.PublishItemEvent(sse.KindRemoved, u)
	}
}

// Run starts the HTTP server and the content watcher with the given options.
func Run(ctx context.Context, opts ...Option) error {
	app, err := newApplication(opts)
	if err != nil {
		return err
	}
	cfg := app.config

	logger := newLogger(app.stdout, cfg.App.LogLevel)

	store, ld, err := newLoader(&cfg.Content)
	if err != nil {
		return err
	}

	logger.Info("Configuration loaded",
		slog.String("http_address", cfg.App.HTTP.Address()),
		slog.String("content_root", store.Root()),
		slog.Any("patterns", ld.Patterns()),
		slog.String("sqlite_path", cfg.SQLite.Path),
		slog.String("log_level", cfg.App.LogLevel.String()))

	db, err := index.Open(cfg.SQLite.Path)
	if err != nil {
		return fmt.Errorf("init index: %w", err)
	}
	defer db.Close()

	// The server never starts without a complete snapshot.
	if _, err := index.Rebuild(ctx, db, ld, logger); err != nil {
		return fmt.Errorf("initial rebuild: %w", err)
	}

	broker := sse.NewBroker(cfg.Events.Throttle)
	defer broker.Close()

	apiRouter := api.NewRouter(db, cfg.Auth.AuthEnabled(), cfg.Auth.Token, broker)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Health check endpoints (unauthenticated).
	r.Get("/health/live", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get("/health/ready", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if _, err := db.FeedChecksum(); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"status":"unavailable"}`))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Mount("/api", apiRouter)

	httpServer := &http.Server{
		Addr:              cfg.App.HTTP.Address(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		err := index.Watch(gCtx, db, ld, store.Root(), logger, func(ch index.Changes) {
			publishChanges(broker, ch)
		})
		if err != nil {
			return fmt.Errorf("watcher: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		logger.Info("Starting HTTP server", slog.String("address", cfg.App.HTTP.Address()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	// Handle shutdown signals.
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
		case <-gCtx.Done():
			logger.Info("Context cancelled, initiating shutdown")
		}

		logger.Info("Shutting down server...")

		// Closing the broker ends open SSE streams so Shutdown can drain.
		broker.Close()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", slog.String("error", err.Error()))
		}

		return errShutdown
	})

	if err := g.Wait(); err != nil && !errors.Is(err, errShutdown) {
		logger.Error("Application error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Server stopped successfully")
	return nil
}

// errShutdown cancels the group once the server has been shut down, which
// also stops the watcher.
var errShutdown = errors.New("shutdown")
