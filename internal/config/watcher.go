package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/rail44/calc/internal/log"
)

const debounceDelay = 100 * time.Millisecond

// Watcher reports changes to a config file.
type Watcher struct {
	watcher  *fsnotify.Watcher
	filePath string
	onChange func()
}

// NewWatcher watches filePath and its directory, so that editors which
// replace the file on save are still noticed.
func NewWatcher(filePath string, onChange func()) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := watcher.Add(filePath); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch file: %w", err)
	}

	dir := filepath.Dir(filePath)
	if err := watcher.Add(dir); err != nil {
		// Non-fatal: only in-place writes will be seen
		log.Warn("couldn't watch config directory", "dir", dir, "error", err)
	}

	return &Watcher{
		watcher:  watcher,
		filePath: filePath,
		onChange: onChange,
	}, nil
}

// Start delivers debounced change notifications until ctx is done or the
// watcher is closed.
func (w *Watcher) Start(ctx context.Context) {
	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if filepath.Clean(event.Name) != filepath.Clean(w.filePath) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounceDelay, w.onChange)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Warn("config watcher error", "error", err)
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
