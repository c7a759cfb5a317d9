package index

import (
	"context"
	"log/slog"

	"github.com/starford/journal/internal/loader"
)

// Rebuild recomputes the feed from disk and publishes it as the new snapshot.
// Discovery failures are returned unchanged and leave the previous snapshot
// in place.
func Rebuild(ctx context.Context, db *DB, ld *loader.Loader, logger *slog.Logger) (Changes, error) {
	items, err := ld.Load(ctx)
	if err != nil {
		return Changes{}, err
	}
	ch, err := db.Publish(items)
	if err != nil {
		return Changes{}, err
	}
	logger.Info("rebuild: published",
		slog.Int("count", len(items)),
		slog.Int("added", len(ch.Added)),
		slog.Int("updated", len(ch.Updated)),
		slog.Int("removed", len(ch.Removed)))
	return ch, nil
}
