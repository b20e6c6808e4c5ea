package config

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"

	"github.com/grovetools/selectkit/events"
)

// EventChanged is published on the watcher's bus with the changed file
// path as payload.
const EventChanged = "config-changed"

// Watcher watches a configuration file's directory and publishes a
// change event when the file is rewritten. Editors replace files
// rather than writing in place, so the parent directory is watched and
// events are debounced.
type Watcher struct {
	watcher    *fsnotify.Watcher
	bus        *events.Bus
	path       string
	debounce   time.Duration
	mu         sync.Mutex
	lastChange time.Time
	logger     *logrus.Entry
}

// NewWatcher creates a Watcher for the config file at path, publishing
// EventChanged on bus. debounce <= 0 defaults to 100ms.
func NewWatcher(path string, bus *events.Bus, debounce time.Duration) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, err
	}

	if debounce <= 0 {
		debounce = 100 * time.Millisecond
	}

	return &Watcher{
		watcher:  watcher,
		bus:      bus,
		path:     path,
		debounce: debounce,
		// The logging package reads its own config through this
		// package, so the watcher sticks to the standard logger.
		logger: logrus.StandardLogger().WithField("component", "config-watcher"),
	}, nil
}

// Start begins watching for config changes. It blocks until the
// context is cancelled.
func (w *Watcher) Start(ctx context.Context) {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.logger.Debugf("fsnotify event: %s op=%v", event.Name, event.Op)

			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				if w.matches(event.Name) {
					w.handleChange(event.Name)
				}
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Errorf("Watcher error: %v", err)
		case <-ctx.Done():
			w.watcher.Close()
			return
		}
	}
}

// matches accepts the watched file itself plus any sibling selectkit
// config file, covering atomic-replace editors that write a temp name
// first.
func (w *Watcher) matches(name string) bool {
	if name == w.path {
		return true
	}
	base := filepath.Base(name)
	for _, cn := range configNames {
		if base == cn {
			return true
		}
	}
	return strings.HasPrefix(base, "selectkit.")
}

// handleChange publishes a change event with debouncing.
func (w *Watcher) handleChange(file string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	elapsed := time.Since(w.lastChange)
	if elapsed < w.debounce {
		w.logger.Debugf("Debounced: %s (only %v since last change)", filepath.Base(file), elapsed)
		return
	}
	w.lastChange = time.Now()

	w.logger.Infof("Config changed: %s", filepath.Base(file))
	w.bus.Publish(EventChanged, file)
}

// Close stops the watcher and releases resources.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
