package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDebounce collapses the burst of events an editor save produces.
const reloadDebounce = 100 * time.Millisecond

// Watcher reloads a configuration file whenever it changes on disk.
// Reloaded configurations are delivered on Reloads; the consumer drains it on its own thread.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	reloads chan *Config
	errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// NewWatcher starts watching path. The parent directory is watched so that editors replacing
// the file (write to temp, rename) are seen.
//
// Parameters:
//   - path: the configuration file
//
// Returns:
//   - *Watcher: the running watcher
//   - error: a wrapped error if the watch could not be set up
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("config: watch %s: %w", abs, err)
	}

	w := &Watcher{
		watcher: fw,
		path:    abs,
		reloads: make(chan *Config, 1),
		errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Reloads delivers each successfully reloaded configuration. Only the latest pending one is kept.
func (w *Watcher) Reloads() <-chan *Config {
	return w.reloads
}

// Errors delivers reload failures (unreadable or invalid files).
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Close stops the watcher. Safe to call more than once.
//
// Returns:
//   - error: the error from closing the underlying watcher
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	var last time.Time
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			now := time.Now()
			if now.Sub(last) < reloadDebounce {
				continue
			}
			last = now
			// Give the writer a moment to finish before reading.
			time.Sleep(reloadDebounce)
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendErr(err)
		case <-w.closeCh:
			return
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		w.sendErr(err)
		return
	}
	// Replace a stale pending config rather than block.
	select {
	case <-w.reloads:
	default:
	}
	select {
	case w.reloads <- cfg:
	case <-w.closeCh:
	}
}

func (w *Watcher) sendErr(err error) {
	select {
	case w.errors <- err:
	default:
	}
}
