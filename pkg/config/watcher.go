package config

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/fluo-io/fluo-go/pkg/logger"
)

// Watcher reloads a properties file whenever it changes on disk and
// hands the freshly loaded configuration to registered callbacks. A
// reload that fails to parse is logged and skipped, so callbacks only
// ever see configurations that loaded cleanly.
type Watcher struct {
	watcher   *fsnotify.Watcher
	log       logger.Logger
	path      string
	callbacks []func(*Config)
	mu        sync.RWMutex
	stopCh    chan struct{}
	startOnce sync.Once
	closeOnce sync.Once
}

// NewWatcher prepares a watcher for the given properties file. Call
// Start to begin receiving events.
func NewWatcher(path string, log logger.Logger) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Watcher{
		watcher: fsWatcher,
		log:     log,
		path:    absPath,
		stopCh:  make(chan struct{}),
	}, nil
}

// OnReload registers a callback invoked with each successfully
// reloaded configuration.
func (w *Watcher) OnReload(callback func(*Config)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks = append(w.callbacks, callback)
}

// Start begins watching the file. Event handling stops when ctx is
// canceled or Close is called.
func (w *Watcher) Start(ctx context.Context) error {
	if err := w.watcher.Add(w.path); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.path, err)
	}
	w.startOnce.Do(func() {
		go w.handleEvents(ctx)
	})
	return nil
}

func (w *Watcher) handleEvents(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Name != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				w.reload()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			if err != nil {
				w.log.Error("file watcher error", "error", err)
			}
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := NewFromFile(w.path)
	if err != nil {
		w.log.Error("failed to reload configuration", "file", w.path, "error", err)
		return
	}
	cfg.WithLogger(w.log)
	w.mu.RLock()
	callbacks := make([]func(*Config), len(w.callbacks))
	copy(callbacks, w.callbacks)
	w.mu.RUnlock()
	for _, callback := range callbacks {
		if callback != nil {
			callback(cfg)
		}
	}
	w.log.Info("configuration reloaded", "file", w.path)
}

// Close stops the watcher and releases its resources. It is safe to
// call more than once.
func (w *Watcher) Close() error {
	var closeErr error
	w.closeOnce.Do(func() {
		close(w.stopCh)
		if err := w.watcher.Close(); err != nil {
			closeErr = fmt.Errorf("failed to close watcher: %w", err)
		}
	})
	return closeErr
}
