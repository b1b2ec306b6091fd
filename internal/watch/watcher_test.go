package watch_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/parleyhq/parley/internal/watch"
	"github.com/parleyhq/parley/internal/workspace"
	"github.com/stretchr/testify/require"
)

func newWatchedProject(t *testing.T) (*watch.Watcher, string) {
	t.Helper()

	ws := workspace.Workspace{Root: t.TempDir()}
	filesDir := ws.FilesDir("demo")
	require.NoError(t, os.MkdirAll(filesDir, 0o755))

	w, err := watch.New(ws, "demo", nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, w.Start(ctx))
	t.Cleanup(func() {
		cancel()
		w.Stop()
	})

	return w, filesDir
}

func waitEvent(t *testing.T, w *watch.Watcher) watch.Event {
	t.Helper()
	select {
	case event, ok := <-w.Events():
		require.True(t, ok, "event channel closed")
		return event
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for event")
		return watch.Event{}
	}
}

func TestWatcher_ReportsCreate(t *testing.T) {
	w, filesDir := newWatchedProject(t)

	require.NoError(t, os.WriteFile(filepath.Join(filesDir, "note.md"), []byte("x"), 0o644))

	event := waitEvent(t, w)
	require.Equal(t, "demo", event.Slug)
	require.Equal(t, "note.md", event.Path)
	require.Equal(t, watch.OpCreated, event.Op)
	require.False(t, event.Timestamp.IsZero())
}

func TestWatcher_CoversNewDirectories(t *testing.T) {
	w, filesDir := newWatchedProject(t)

	sub := filepath.Join(filesDir, "sub")
	require.NoError(t, os.Mkdir(sub, 0o755))

	event := waitEvent(t, w)
	require.Equal(t, "sub", event.Path)
	require.Equal(t, watch.OpCreated, event.Op)

	// Writes inside the new directory are observed too.
	require.NoError(t, os.WriteFile(filepath.Join(sub, "inner.txt"), []byte("y"), 0o644))

	for {
		event = waitEvent(t, w)
		if event.Path == "sub/inner.txt" {
			break
		}
	}
}

func TestWatcher_IgnoresHidden(t *testing.T) {
	w, filesDir := newWatchedProject(t)

	require.NoError(t, os.WriteFile(filepath.Join(filesDir, ".hidden"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(filesDir, "visible.txt"), []byte("x"), 0o644))

	// The hidden write is filtered; the first delivered event is the
	// visible one.
	event := waitEvent(t, w)
	require.Equal(t, "visible.txt", event.Path)
}

func TestWatcher_MissingTree(t *testing.T) {
	ws := workspace.Workspace{Root: t.TempDir()}

	w, err := watch.New(ws, "ghost", nil)
	require.NoError(t, err)
	defer w.Stop()

	require.Error(t, w.Start(context.Background()))
}
