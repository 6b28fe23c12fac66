package config

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a settings file when it changes on disk.
type Watcher struct {
	path     string
	watcher  *fsnotify.Watcher
	logger   *log.Logger
	onChange func(Settings)
}

// NewWatcher creates a watcher for path. onChange receives every settings
// value that loads cleanly; files that fail to parse are logged and skipped.
func NewWatcher(path string, logger *log.Logger, onChange func(Settings)) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Watcher{
		path:     abs,
		watcher:  w,
		logger:   logger,
		onChange: onChange,
	}, nil
}

// Start watches until ctx is done or Stop is called.
// The parent directory is watched so editors that replace the file on save
// are still seen.
func (w *Watcher) Start(ctx context.Context) error {
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("config: watch %s: %w", w.path, err)
	}
	w.logger.Debug("watching config", "path", w.path)

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("config watcher error", "err", err)

		case <-ctx.Done():
			return nil
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}

	cfg, err := LoadFile(w.path)
	if err != nil {
		w.logger.Warn("config reload failed", "path", w.path, "err", err)
		return
	}
	w.logger.Info("config reloaded", "path", w.path)
	if w.onChange != nil {
		w.onChange(cfg)
	}
}

// Stop releases the underlying watcher.
func (w *Watcher) Stop() error {
	return w.watcher.Close()
}
