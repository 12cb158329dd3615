package csvfile

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/Pablo751/dientes/internal/logger"
)

// debounceDelay coalesces the event bursts editors and exporters produce
// when rewriting a file.
const debounceDelay = 200 * time.Millisecond

// Watcher reports changes to the catalog dataset so the caller can reload.
// The parent directory is watched rather than the file itself: most tools
// replace files by rename, which would otherwise drop the watch.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
}

// NewWatcher creates a watcher for the given catalog file.
func NewWatcher(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	dir := filepath.Dir(path)
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	return &Watcher{
		path:    path,
		watcher: fw,
	}, nil
}

// Watch emits the catalog path each time the file changes, debounced. The
// channel closes when the context is cancelled or the watcher is closed.
func (w *Watcher) Watch(ctx context.Context) <-chan string {
	changes := make(chan string, 1)

	go func() {
		defer close(changes)

		var debounce *time.Timer
		defer func() {
			if debounce != nil {
				debounce.Stop()
			}
		}()

		fire := make(chan struct{}, 1)
		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				if !w.matches(event) {
					continue
				}
				if debounce == nil {
					debounce = time.AfterFunc(debounceDelay, func() {
						select {
						case fire <- struct{}{}:
						default:
						}
					})
				} else {
					debounce.Reset(debounceDelay)
				}

			case <-fire:
				debounce = nil
				select {
				case changes <- w.path:
				case <-ctx.Done():
					return
				}

			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("catalog watcher: %v", err)
			}
		}
	}()

	return changes
}

// matches reports whether the event concerns the catalog file and is a
// content-affecting operation.
func (w *Watcher) matches(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != filepath.Clean(w.path) {
		return false
	}
	return event.Op.Has(fsnotify.Write) ||
		event.Op.Has(fsnotify.Create) ||
		event.Op.Has(fsnotify.Rename)
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
