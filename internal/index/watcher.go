package index

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/starford/journal/internal/loader"
)

const rebuildDebounce = 200 * time.Millisecond

// ChangeCallback is called after a watcher-driven rebuild changed the snapshot.
type ChangeCallback func(Changes)

// Watch starts an fsnotify watcher on the content root and rebuilds the
// snapshot when watched documents change, until ctx is cancelled. Bursts of
// events are coalesced into one rebuild. cb (if non-nil) receives the changes
// of every rebuild that altered the snapshot.
//
// New directories created at runtime are automatically added to the watch
// list. Failed rebuilds are logged and keep the previous snapshot.
func Watch(ctx context.Context, db *DB, ld *loader.Loader, root string, logger *slog.Logger, cb ChangeCallback) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	dirs := make(map[string]struct{})
	if err := addDirsRecursive(w, root, dirs); err != nil {
		return err
	}

	logger.Info("watcher: started", slog.String("root", root))

	var timer *time.Timer
	var timerCh <-chan time.Time

	scheduleRebuild := func() {
		if timer == nil {
			timer = time.NewTimer(rebuildDebounce)
			timerCh = timer.C
		} else {
			timer.Reset(rebuildDebounce)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			logger.Info("watcher: stopped")
			return nil

		case <-timerCh:
			ch, err := Rebuild(ctx, db, ld, logger)
			if err != nil {
				logger.Warn("watcher: rebuild failed", slog.String("error", err.Error()))
				continue
			}
			if cb != nil && !ch.Empty() {
				cb(ch)
			}

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}

			if ev.Op&fsnotify.Create != 0 {
				if info, statErr := os.Stat(ev.Name); statErr == nil && info.IsDir() {
					if name := filepath.Base(ev.Name); strings.HasPrefix(name, ".") || name == "node_modules" {
						continue
					}
					if addErr := addDirsRecursive(w, ev.Name, dirs); addErr != nil {
						logger.Warn("watcher: add new dir failed",
							slog.String("path", ev.Name),
							slog.String("error", addErr.Error()))
					} else {
						logger.Debug("watcher: watching new dir", slog.String("path", ev.Name))
					}
					scheduleRebuild()
					continue
				}
			}

			// A removed or renamed directory carries no .md suffix but may
			// have held watched documents.
			if ev.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
				if _, wasDir := dirs[ev.Name]; wasDir {
					forgetDirs(dirs, ev.Name)
					logger.Debug("watcher: dir gone", slog.String("path", ev.Name))
					scheduleRebuild()
					continue
				}
			}

			rel, relErr := filepath.Rel(root, ev.Name)
			if relErr != nil || !ld.Matches(filepath.ToSlash(rel)) {
				continue
			}
			logger.Debug("watcher: change", slog.String("path", rel), slog.String("op", ev.Op.String()))
			scheduleRebuild()

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher: error", slog.String("error", watchErr.Error()))
		}
	}
}

// addDirsRecursive adds root and all its visible subdirectories to the
// watcher and records them in dirs.
func addDirsRecursive(w *fsnotify.Watcher, root string, dirs map[string]struct{}) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && (strings.HasPrefix(d.Name(), ".") || d.Name() == "node_modules") {
			return fs.SkipDir
		}
		if err := w.Add(path); err != nil {
			return err
		}
		dirs[path] = struct{}{}
		return nil
	})
}

// forgetDirs drops dir and everything below it from dirs.
func forgetDirs(dirs map[string]struct{}, dir string) {
	prefix := dir + string(filepath.Separator)
	for d := range dirs {
		if d == dir || strings.HasPrefix(d, prefix) {
			delete(dirs, d)
		}
	}
}
