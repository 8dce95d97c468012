// Package watch notifies a callback when a catalog file changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Handler is called with the watched path after a debounced change.
type Handler func(path string)

// Watcher wraps fsnotify with debouncing. The parent directory of the
// target file is watched, not the file itself: editors that save via
// rename-and-replace would otherwise silently detach the watch.
type Watcher struct {
	fw       *fsnotify.Watcher
	debounce time.Duration
	logger   *zap.Logger
}

// New creates a Watcher. A zero debounce disables coalescing.
func New(debounce time.Duration, logger *zap.Logger) (*Watcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: create watcher: %w", err)
	}
	return &Watcher{fw: fw, debounce: debounce, logger: logger}, nil
}

// Run watches path until ctx is cancelled, invoking fn after each debounced
// change. It returns nil on cancellation.
func (w *Watcher) Run(ctx context.Context, path string, fn Handler) error {
	defer w.fw.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("watch: resolve %s: %w", path, err)
	}
	dir := filepath.Dir(abs)
	base := filepath.Base(abs)

	if err := w.fw.Add(dir); err != nil {
		return fmt.Errorf("watch: add %s: %w", dir, err)
	}
	w.logger.Debug("watching catalog file",
		zap.String("dir", dir),
		zap.String("file", base))

	deb := newDebouncer(w.debounce)
	defer deb.cancel()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fw.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.logger.Debug("catalog file changed", zap.String("op", event.Op.String()))
			if w.debounce <= 0 {
				fn(abs)
				continue
			}
			deb.debounce(func() { fn(abs) })

		case err, ok := <-w.fw.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch: %w", err)
		}
	}
}
