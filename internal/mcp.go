package internal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/starford/journal/internal/index"
	"github.com/starford/journal/internal/mcpserver"
)

// ServeMCP rebuilds the snapshot and serves the MCP tools on stdio. The
// content watcher keeps the snapshot current while the session is open.
func ServeMCP(ctx context.Context, opts ...Option) error {
	app, err := newApplication(opts)
	if err != nil {
		return err
	}
	cfg := app.config

	// stdout carries the MCP protocol.
	logger := newLogger(app.stderr, cfg.App.LogLevel)

	store, ld, err := newLoader(&cfg.Content)
	if err != nil {
		return err
	}

	db, err := index.Open(cfg.SQLite.Path)
	if err != nil {
		return fmt.Errorf("init index: %w", err)
	}
	defer db.Close()

	if _, err := index.Rebuild(ctx, db, ld, logger); err != nil {
		return fmt.Errorf("initial rebuild: %w", err)
	}

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		if err := index.Watch(watchCtx, db, ld, store.Root(), logger, nil); err != nil {
			logger.Error("watcher failed", slog.String("error", err.Error()))
		}
	}()

	logger.Info("MCP server starting on stdio")
	return mcpserver.New(db).ServeStdio()
}
