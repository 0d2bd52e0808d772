package config

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay coalesces the burst of events editors produce on save.
const debounceDelay = 100 * time.Millisecond

// Watcher reloads the config file whenever it changes on disk.
type Watcher struct {
	path    string
	name    string
	watcher *fsnotify.Watcher
	logger  *log.Logger
}

// NewWatcher starts watching the directory containing path. The file itself
// need not exist yet. Call Run to receive reloaded configs and Close when done.
func NewWatcher(path string, logger *log.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create config watcher: %w", err)
	}

	dir := filepath.Dir(path)
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	return &Watcher{
		path:    path,
		name:    filepath.Base(path),
		watcher: fw,
		logger:  logger,
	}, nil
}

// Run calls onChange with the reloaded config after each change to the file.
// Removing the file reverts to defaults. A file that fails to load is logged
// and skipped, so the previous config stays in effect. Run returns when ctx
// is cancelled or the watcher is closed.
func (w *Watcher) Run(ctx context.Context, onChange func(*Config)) {
	var debounce <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != w.name {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			debounce = time.After(debounceDelay)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Printf("Config watcher: %v", err)
		case <-debounce:
			debounce = nil
			cfg, err := Load(w.path)
			if err != nil {
				w.logger.Printf("Config reload failed, keeping previous settings: %v", err)
				continue
			}
			w.logger.Printf("Config reloaded from %s", w.path)
			onChange(cfg)
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
