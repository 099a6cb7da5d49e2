// Package watch requests a device reload when the configuration file
// changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/devcap/internal/ports"
)

// DefaultDebounce collapses the burst of events editors produce on save.
const DefaultDebounce = 200 * time.Millisecond

// ConfigWatcher monitors one config file via fsnotify and calls onChange
// once per burst of writes. onChange must only set a flag; the reload
// itself happens on the acquisition loop's goroutine.
type ConfigWatcher struct {
	path     string
	debounce time.Duration
	onChange func()
	logger   ports.Logger

	mu    sync.Mutex
	timer *time.Timer
}

// NewConfigWatcher watches path. A debounce of zero uses DefaultDebounce.
func NewConfigWatcher(path string, debounce time.Duration, onChange func(), logger ports.Logger) *ConfigWatcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &ConfigWatcher{
		path:     path,
		debounce: debounce,
		onChange: onChange,
		logger:   logger,
	}
}

// Run watches the file's directory, so atomic renames by editors are seen,
// until ctx is canceled.
func (w *ConfigWatcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	name := filepath.Base(w.path)

	for {
		select {
		case <-ctx.Done():
			w.stopTimer()
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.schedule()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("config watcher error", ports.Err(err))
		}
	}
}

func (w *ConfigWatcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		w.logger.Info("config file changed", ports.String("path", w.path))
		w.onChange()
	})
}

func (w *ConfigWatcher) stopTimer() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
}
