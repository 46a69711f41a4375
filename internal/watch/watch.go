// Package watch re-parses scenario scripts as they change on disk.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settle is how long a path must stay quiet before it is reported.
// Editors fire several events per save; events inside the window
// coalesce into one call.
const settle = 100 * time.Millisecond

// Run watches dir and calls fn with the path of every created or written
// .bts file once its events settle. It blocks until ctx is canceled or
// the watcher fails.
func Run(ctx context.Context, dir string, fn func(path string)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	slog.Info("watching", "dir", dir)

	pending := make(map[string]struct{})
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			slog.Info("watcher stopped")
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !relevant(ev) {
				continue
			}
			pending[ev.Name] = struct{}{}
			if timer == nil {
				timer = time.NewTimer(settle)
			} else {
				timer.Reset(settle)
			}
			fire = timer.C

		case <-fire:
			paths := make([]string, 0, len(pending))
			for p := range pending {
				paths = append(paths, p)
			}
			sort.Strings(paths)
			for _, p := range paths {
				fn(p)
			}
			pending = make(map[string]struct{})
			fire = nil

		case werr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Error("watch error", "err", werr)
		}
	}
}

// relevant reports whether an event should trigger a re-parse: a create
// or write of a .bts file.
func relevant(ev fsnotify.Event) bool {
	if !ev.Op.Has(fsnotify.Create) && !ev.Op.Has(fsnotify.Write) {
		return false
	}
	return filepath.Ext(ev.Name) == ".bts"
}
