package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is how long the watcher waits after the last file event before reloading.
const DefaultDebounce = 100 * time.Millisecond

// Watcher reloads a configuration file when it changes on disk and hands every valid
// result to a callback. Invalid files are logged and skipped; the previous configuration
// stays in effect.
type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	onChange func(*Config)
	logger   *zap.Logger
	debounce time.Duration

	closeCh  chan struct{}
	done     chan struct{}
	once     sync.Once
	closeErr error
}

// WatchOption is a functional option for configuring a Watcher.
type WatchOption func(*Watcher)

// WithWatchLogger sets the logger used for reload and error output.
//
// Parameters:
//   - logger: the zap logger
//
// Returns:
//   - WatchOption: option function to apply
func WithWatchLogger(logger *zap.Logger) WatchOption {
	return func(w *Watcher) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// WithDebounce sets the quiet period after the last file event before a reload.
//
// Parameters:
//   - d: debounce period (ignored if <= 0)
//
// Returns:
//   - WatchOption: option function to apply
func WithDebounce(d time.Duration) WatchOption {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// Watch starts watching the configuration file at path. The containing directory is watched so
// that editors replacing the file by rename are still seen. onChange runs on the watcher
// goroutine. The watcher stops when ctx is done or Close is called.
//
// Parameters:
//   - ctx: stops the watcher when cancelled
//   - path: the configuration file
//   - onChange: receives every successfully reloaded configuration
//   - options: functional options to configure the watcher
//
// Returns:
//   - *Watcher: the running watcher
//   - error: error if the directory cannot be watched
func Watch(ctx context.Context, path string, onChange func(*Config), options ...WatchOption) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		watcher:  fw,
		path:     abs,
		onChange: onChange,
		logger:   zap.NewNop(),
		debounce: DefaultDebounce,
		closeCh:  make(chan struct{}),
		done:     make(chan struct{}),
	}
	for _, opt := range options {
		opt(w)
	}

	go w.run(ctx)
	return w, nil
}

// Close stops the watcher and waits for its goroutine to exit. Safe to call multiple times.
func (w *Watcher) Close() error {
	w.once.Do(func() {
		close(w.closeCh)
	})
	<-w.done
	return w.closeErr
}

// Done is closed once the watcher goroutine has exited.
func (w *Watcher) Done() <-chan struct{} {
	return w.done
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.done)
	defer func() {
		w.closeErr = w.watcher.Close()
	}()

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.closeCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			timer.Reset(w.debounce)
			fire = timer.C
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("config watcher error", zap.Error(err))
		case <-fire:
			fire = nil
			w.reload()
		}
	}
}

// reload loads the file and forwards a valid result.
func (w *Watcher) reload() {
	// Load falls back to defaults for a missing file; mid-rename that is not a change.
	if _, err := os.Stat(w.path); err != nil {
		w.logger.Debug("config file unavailable", zap.String("path", w.path), zap.Error(err))
		return
	}
	cfg, err := Load(w.path)
	if err != nil {
		w.logger.Warn("config reload rejected", zap.String("path", w.path), zap.Error(err))
		return
	}
	w.logger.Info("config reloaded", zap.String("path", w.path))
	if w.onChange != nil {
		w.onChange(cfg)
	}
}
