// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package watcher reports newly written save files in a single directory.
package watcher

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-pydt-client/internal/logger"
	"github.com/fsnotify/fsnotify"
)

// ErrAlreadyStarted is returned by Start on a watcher that was started or
// stopped before. A SaveWatcher is single use.
var ErrAlreadyStarted = errors.New("save watcher already started")

const eventsBuffer = 16

// Options configures a SaveWatcher.
type Options struct {
	// Dir is the directory to watch. It is created if missing.
	Dir string
	// Extension is the save file extension including the dot. Matching is
	// case insensitive.
	Extension string
	// StabilityDelay is the quiet period after the last write to a new file
	// before it is reported.
	StabilityDelay time.Duration
	Logger         *logger.Logger
}

// SaveWatcher emits the path of every save file created in Dir after Start,
// once the file has stopped changing for StabilityDelay. Files present when
// Start runs are never reported, and each path is reported at most once.
type SaveWatcher struct {
	opts    Options
	watcher *fsnotify.Watcher
	events  chan string
	log     *logger.Logger

	// seen holds pre-existing and already reported paths.
	seen map[string]struct{}

	// pending holds the stability timer of each new path.
	pending  map[string]*pendingFile
	timersMu sync.Mutex
	timersWG sync.WaitGroup

	stopCh    chan struct{}
	stoppedCh chan struct{}
	started   bool
	stopped   bool
	stateMu   sync.Mutex
}

type pendingFile struct {
	timer *time.Timer
}

// New creates a watcher. Nothing is watched until Start.
func New(opts Options) *SaveWatcher {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	return &SaveWatcher{
		opts:      opts,
		events:    make(chan string, eventsBuffer),
		log:       log,
		seen:      make(map[string]struct{}),
		pending:   make(map[string]*pendingFile),
		stopCh:    make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Start creates the directory if needed, records the existing save files and
// begins watching.
func (w *SaveWatcher) Start() error {
	w.stateMu.Lock()
	defer w.stateMu.Unlock()

	if w.started || w.stopped {
		return ErrAlreadyStarted
	}

	if err := os.MkdirAll(w.opts.Dir, 0o755); err != nil {
		return fmt.Errorf("create save dir: %w", err)
	}

	// Snapshot before Add so that no existing file can slip in as new.
	if err := w.scanExistingFiles(); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create fs watcher: %w", err)
	}
	if err = watcher.Add(w.opts.Dir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("watch save dir: %w", err)
	}
	w.watcher = watcher

	w.started = true
	go w.watchLoop()

	w.log.Debug().
		Str("dir", w.opts.Dir).
		Int("existing", len(w.seen)).
		Msg("save watcher started")

	return nil
}

// Stop terminates the watcher, cancels pending stability checks and closes
// the events channel. Safe to call more than once and before Start.
func (w *SaveWatcher) Stop() {
	w.stateMu.Lock()
	if w.stopped {
		w.stateMu.Unlock()
		return
	}
	w.stopped = true
	started := w.started
	w.stateMu.Unlock()

	close(w.stopCh)
	if started {
		<-w.stoppedCh
		_ = w.watcher.Close()
	}

	w.timersMu.Lock()
	for path, p := range w.pending {
		if p.timer.Stop() {
			w.timersWG.Done()
		}
		delete(w.pending, path)
	}
	w.timersMu.Unlock()

	// running callbacks observe stopCh and return
	w.timersWG.Wait()
	close(w.events)
}

// Events returns the channel of complete new save paths.
func (w *SaveWatcher) Events() <-chan string {
	return w.events
}

// Forget makes path eligible to be reported again on its next create or
// write.
func (w *SaveWatcher) Forget(path string) {
	w.timersMu.Lock()
	delete(w.seen, filepath.Clean(path))
	w.timersMu.Unlock()
}

// Dir returns the watched directory.
func (w *SaveWatcher) Dir() string {
	return w.opts.Dir
}

func (w *SaveWatcher) scanExistingFiles() error {
	entries, err := os.ReadDir(w.opts.Dir)
	if err != nil {
		return fmt.Errorf("scan save dir: %w", err)
	}

	w.timersMu.Lock()
	defer w.timersMu.Unlock()

	for _, entry := range entries {
		if entry.IsDir() || !w.matches(entry.Name()) {
			continue
		}
		w.seen[filepath.Join(w.opts.Dir, entry.Name())] = struct{}{}
	}

	return nil
}

func (w *SaveWatcher) matches(name string) bool {
	if strings.HasPrefix(name, ".") {
		return false
	}
	return strings.EqualFold(filepath.Ext(name), w.opts.Extension)
}

func (w *SaveWatcher) watchLoop() {
	defer close(w.stoppedCh)

	for {
		select {
		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFsEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn().Err(err).Str("dir", w.opts.Dir).Msg("save watcher error")
		}
	}
}

func (w *SaveWatcher) handleFsEvent(event fsnotify.Event) {
	if !w.matches(filepath.Base(event.Name)) {
		return
	}
	path := filepath.Clean(event.Name)

	w.timersMu.Lock()
	defer w.timersMu.Unlock()

	if _, ok := w.seen[path]; ok {
		return
	}

	// Unseen paths only exist after Start or after Forget, so a write to
	// one is as good as a create.
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return
	}

	p, isPending := w.pending[path]

	if isPending && p.timer.Stop() {
		w.timersWG.Done()
	}
	w.schedule(path)
}

// schedule must be called with timersMu held.
func (w *SaveWatcher) schedule(path string) {
	p := &pendingFile{}
	w.timersWG.Add(1)
	p.timer = time.AfterFunc(w.opts.StabilityDelay, func() {
		w.fire(path, p)
	})
	w.pending[path] = p
}

func (w *SaveWatcher) fire(path string, p *pendingFile) {
	defer w.timersWG.Done()

	info, err := os.Stat(path)

	w.timersMu.Lock()
	if w.pending[path] != p {
		// superseded by a newer event
		w.timersMu.Unlock()
		return
	}
	delete(w.pending, path)
	if err != nil || info.IsDir() {
		w.timersMu.Unlock()
		return
	}
	if _, ok := w.seen[path]; ok {
		w.timersMu.Unlock()
		return
	}
	w.seen[path] = struct{}{}
	w.timersMu.Unlock()

	w.log.Info().Str("path", path).Int64("size", info.Size()).Msg("new save detected")

	select {
	case w.events <- path:
	case <-w.stopCh:
	}
}
