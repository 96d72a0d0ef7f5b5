package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher reloads a config file when it changes on disk and publishes each
// valid result on Updates. Invalid files are reported on Errors and the
// previous config stays in effect.
type Watcher struct {
	path     string
	debounce time.Duration
	log      *zap.Logger

	fs      *fsnotify.Watcher
	Updates chan *Config
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// Watch starts watching path. The parent directory is watched so editors
// that save by renaming a temp file are still seen.
func Watch(path string, debounce time.Duration, log *zap.Logger) (*Watcher, error) {
	if log == nil {
		log = zap.NewNop()
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:     abs,
		debounce: debounce,
		log:      log,
		fs:       fsw,
		Updates:  make(chan *Config, 1),
		Errors:   make(chan error, 1),
		closeCh:  make(chan struct{}),
	}
	go w.run()

	log.Info("watching config", zap.String("path", abs))
	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops the watcher. Updates and Errors are closed once the
// watch loop exits.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.fs.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.Updates)
	defer close(w.Errors)

	// Armed by the first matching event
	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			// Restart the quiet period on every burst of events
			timer.Reset(w.debounce)

		case <-timer.C:
			w.reload()

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.publishError(err)

		case <-w.closeCh:
			return
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := LoadFile(w.path)
	if err != nil {
		w.log.Warn("config reload rejected", zap.Error(err))
		w.publishError(err)
		return
	}

	// Keep only the newest config if the consumer fell behind
	select {
	case <-w.Updates:
	default:
	}
	w.Updates <- cfg
	w.log.Info("config reloaded", zap.String("path", w.path))
}

func (w *Watcher) publishError(err error) {
	select {
	case w.Errors <- err:
	default:
	}
}
