package builder

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch rebuilds pages under root whenever sidecar files change, until
// ctx is cancelled. Events are debounced so a download burst triggers
// a single full rebuild. New directories created at runtime are added
// to the watch list.
func (b *Builder) Watch(ctx context.Context, root string, debounce time.Duration) error {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("builder: resolve root: %w", err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("builder: start watcher: %w", err)
	}
	defer w.Close()

	if b.recursive {
		err = addDirsRecursive(w, absRoot)
	} else {
		err = w.Add(absRoot)
	}
	if err != nil {
		return fmt.Errorf("builder: watch %s: %w", absRoot, err)
	}

	b.log.Info("watcher: started", slog.String("root", absRoot))

	var rebuildTimer *time.Timer
	var rebuildCh <-chan time.Time

	scheduleRebuild := func() {
		if rebuildTimer == nil {
			rebuildTimer = time.NewTimer(debounce)
			rebuildCh = rebuildTimer.C
		} else {
			rebuildTimer.Reset(debounce)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if rebuildTimer != nil {
				rebuildTimer.Stop()
			}
			b.log.Info("watcher: stopped")
			return nil

		case <-rebuildCh:
			created, err := b.BuildAll(absRoot)
			if err != nil {
				b.log.Error("watcher: rebuild failed", slog.String("error", err.Error()))
				continue
			}
			b.log.Info("watcher: rebuilt", slog.Int("pages", len(created)))

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if b.recursive && ev.Op&fsnotify.Create != 0 {
				if info, statErr := os.Stat(ev.Name); statErr == nil && info.IsDir() {
					if addErr := addDirsRecursive(w, ev.Name); addErr != nil {
						b.log.Warn("watcher: add new dir failed",
							slog.String("path", ev.Name),
							slog.String("error", addErr.Error()))
					} else {
						b.log.Debug("watcher: watching new dir", slog.String("path", ev.Name))
					}
					scheduleRebuild()
					continue
				}
			}
			// Pages land in .html files and temp files, so our own
			// writes never come back around here.
			if !strings.HasSuffix(ev.Name, ".json") {
				continue
			}
			scheduleRebuild()

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			b.log.Error("watcher: error", slog.String("error", watchErr.Error()))
		}
	}
}

// addDirsRecursive adds root and all its subdirectories to the watcher.
func addDirsRecursive(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(path)
		}
		return nil
	})
}
