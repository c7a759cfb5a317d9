package internal

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/starford/journal/internal/storage"
)

// Build runs discovery and indexing once and writes the feed as a JSON array.
// The output file is replaced atomically; without one the feed goes to stdout.
// Discovery failures are returned as *apperr.DiscoveryError.
func Build(ctx context.Context, opts ...Option) error {
	app, err := newApplication(opts)
	if err != nil {
		return err
	}
	cfg := app.config

	logger := newLogger(app.stderr, cfg.App.LogLevel)

	_, ld, err := newLoader(&cfg.Content)
	if err != nil {
		return err
	}

	items, err := ld.Load(ctx)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("build: encode feed: %w", err)
	}
	data = append(data, '\n')

	if app.output == "" || app.output == "-" {
		if _, err := app.stdout.Write(data); err != nil {
			return fmt.Errorf("build: write stdout: %w", err)
		}
		logger.Info("build: feed written", slog.Int("count", len(items)), slog.String("path", "-"))
		return nil
	}

	dir := filepath.Dir(app.output)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("build: create output dir: %w", err)
	}
	out, err := storage.NewFS(dir)
	if err != nil {
		return fmt.Errorf("build: %w", err)
	}
	if err := out.Write(filepath.Base(app.output), data); err != nil {
		return fmt.Errorf("build: %w", err)
	}

	logger.Info("build: feed written", slog.Int("count", len(items)), slog.String("path", app.output))
	return nil
}
