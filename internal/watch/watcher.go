// Package watch notifies observers when files under a project's files/
// tree change. It only observes; all mutations happen through the store.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/parleyhq/parley/internal/workspace"
)

// ErrWatcherFailed indicates the filesystem watcher failed to initialize
var ErrWatcherFailed = errors.New("failed to initialize filesystem watcher")

// Op classifies a change event.
type Op string

const (
	OpCreated  Op = "created"
	OpModified Op = "modified"
	OpRemoved  Op = "removed"
	OpRenamed  Op = "renamed"
)

// Event describes one change under a project's files tree. Path is
// slash-separated and relative to the files root, matching the paths the
// store reports.
type Event struct {
	Slug      string
	Path      string
	Op        Op
	Timestamp time.Time
}

// Watcher watches a single project's files tree. fsnotify does not watch
// recursively, so every subdirectory is armed individually and newly
// created directories are armed as they appear.
type Watcher struct {
	ws       workspace.Workspace
	slug     string
	filesDir string
	watcher  *fsnotify.Watcher
	events   chan Event
	logger   *slog.Logger
	stop     chan struct{}
	stopOnce sync.Once
}

// New creates a watcher for one project's files tree.
func New(ws workspace.Workspace, slug string, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWatcherFailed, err)
	}

	return &Watcher{
		ws:       ws,
		slug:     slug,
		filesDir: ws.FilesDir(slug),
		watcher:  fsWatcher,
		events:   make(chan Event, 64),
		logger:   logger,
		stop:     make(chan struct{}),
	}, nil
}

// Start arms the watcher over the current tree and begins delivering
// events until the context is canceled or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	if err := w.armTree(w.filesDir); err != nil {
		return fmt.Errorf("watching %s: %w", w.filesDir, err)
	}

	go w.processEvents(ctx)
	return nil
}

// Events returns the channel change events are delivered on. The channel
// closes when the watcher stops.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop stops the watcher and releases its resources.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stop)
		_ = w.watcher.Close()
	})
}

func (w *Watcher) armTree(root string) error {
	return filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) && path == root {
				return err
			}
			return nil // skip unreadable subtrees
		}
		if !entry.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(entry.Name(), ".") {
			return filepath.SkipDir
		}
		return w.watcher.Add(path)
	})
}

func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			w.Stop()
			return
		case <-w.stop:
			return
		case fsEvent, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(ctx, fsEvent)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", "slug", w.slug, "error", err)
		}
	}
}

func (w *Watcher) handleEvent(ctx context.Context, fsEvent fsnotify.Event) {
	rel, err := filepath.Rel(w.filesDir, fsEvent.Name)
	if err != nil || rel == "." {
		return
	}
	rel = filepath.ToSlash(rel)
	if hidden(rel) {
		return
	}

	// New directories need their own watch to keep the tree covered.
	if fsEvent.Op.Has(fsnotify.Create) {
		if info, err := os.Stat(fsEvent.Name); err == nil && info.IsDir() {
			if err := w.watcher.Add(fsEvent.Name); err != nil {
				w.logger.Warn("failed to watch new directory", "slug", w.slug, "path", rel, "error", err)
			}
		}
	}

	event := Event{
		Slug:      w.slug,
		Path:      rel,
		Op:        classify(fsEvent.Op),
		Timestamp: time.Now(),
	}

	select {
	case w.events <- event:
	case <-ctx.Done():
	case <-w.stop:
	}
}

func classify(op fsnotify.Op) Op {
	switch {
	case op.Has(fsnotify.Create):
		return OpCreated
	case op.Has(fsnotify.Remove):
		return OpRemoved
	case op.Has(fsnotify.Rename):
		return OpRenamed
	default:
		return OpModified
	}
}

func hidden(rel string) bool {
	for _, part := range strings.Split(rel, "/") {
		if strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}
