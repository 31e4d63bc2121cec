// Package watch re-runs a callback whenever a watched DDL script changes.
package watch

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/schemakit/ddlplan/internal/debug"
)

// Watcher watches a single script file. The containing directory is watched
// rather than the file itself: editors frequently save by writing a temp file
// and renaming it over the original, which would silently detach a watch on
// the file's inode.
type Watcher struct {
	path     string
	debounce time.Duration
	onChange func() error
	fsw      *fsnotify.Watcher
	done     chan struct{}
}

// New creates a watcher for path. Rapid event bursts are coalesced: onChange
// fires once per quiet period of the given debounce length.
func New(path string, debounce time.Duration, onChange func() error) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{
		path:     abs,
		debounce: debounce,
		onChange: onChange,
		fsw:      fsw,
		done:     make(chan struct{}),
	}, nil
}

// Run invokes the callback once for the current file state, then keeps
// re-invoking it in the background as the file changes.
func (w *Watcher) Run() error {
	if err := w.onChange(); err != nil {
		return fmt.Errorf("initial run failed: %w", err)
	}
	go w.loop()
	return nil
}

// Stop ends the background loop and releases the underlying watch.
func (w *Watcher) Stop() error {
	close(w.done)
	return w.fsw.Close()
}

func (w *Watcher) loop() {
	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	var pending <-chan time.Time

	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.isChange(event) {
				continue
			}
			debug.Debug("script changed", "path", w.path, "op", event.Op.String())
			timer.Reset(w.debounce)
			pending = timer.C

		case <-pending:
			pending = nil
			if err := w.onChange(); err != nil {
				debug.Error("watch callback failed", "path", w.path, "err", err)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			debug.Warn("watch error", "path", w.path, "err", err)

		case <-w.done:
			return
		}
	}
}

// isChange reports whether the event is a content change of the watched file.
// Create and Rename count as changes to catch rename-over saves.
func (w *Watcher) isChange(event fsnotify.Event) bool {
	if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Rename) {
		return false
	}
	abs, err := filepath.Abs(event.Name)
	return err == nil && abs == w.path
}
