package fsstore_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/parleyhq/parley/internal/domain/project"
	"github.com/parleyhq/parley/internal/fsstore"
	"github.com/parleyhq/parley/internal/repository"
	"github.com/stretchr/testify/require"
)

func newProjectStore(t *testing.T) (*fsstore.Store, string) {
	t.Helper()
	store, root := newStore(t)
	_, err := store.CreateProject(context.Background(), project.CreateRequest{Name: "Demo"})
	require.NoError(t, err)
	return store, root
}

func TestWriteAndReadFile(t *testing.T) {
	ctx := context.Background()
	store, _ := newProjectStore(t)

	require.NoError(t, store.WriteFile(ctx, "demo", "a/b/notes.md", "# Notes"))

	content, err := store.ReadFile(ctx, "demo", "a/b/notes.md")
	require.NoError(t, err)
	require.Equal(t, "# Notes", content)

	// Overwrite replaces content entirely.
	require.NoError(t, store.WriteFile(ctx, "demo", "a/b/notes.md", "new"))
	content, err = store.ReadFile(ctx, "demo", "a/b/notes.md")
	require.NoError(t, err)
	require.Equal(t, "new", content)
}

func TestReadFile_Missing(t *testing.T) {
	ctx := context.Background()
	store, _ := newProjectStore(t)

	_, err := store.ReadFile(ctx, "demo", "nope.txt")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestFilePathValidation(t *testing.T) {
	ctx := context.Background()
	store, _ := newProjectStore(t)

	for _, p := range []string{"", ".", "..", "../escape", "/abs", "a/../../escape"} {
		_, err := store.ReadFile(ctx, "demo", p)
		require.ErrorIs(t, err, repository.ErrInvalidPath, "path %q", p)
		require.ErrorIs(t, store.WriteFile(ctx, "demo", p, "x"), repository.ErrInvalidPath, "path %q", p)
	}

	// The config is outside the files root and stays unreachable.
	_, err := store.ReadFile(ctx, "demo", "files/../config.json")
	require.Error(t, err)
}

func TestCreateFile_Exclusive(t *testing.T) {
	ctx := context.Background()
	store, _ := newProjectStore(t)

	require.NoError(t, store.CreateFile(ctx, "demo", "draft.md", "v1"))
	require.ErrorIs(t, store.CreateFile(ctx, "demo", "draft.md", "v2"), repository.ErrExists)

	// The losing create never touches the existing content.
	content, err := store.ReadFile(ctx, "demo", "draft.md")
	require.NoError(t, err)
	require.Equal(t, "v1", content)
}

func TestDeleteFile(t *testing.T) {
	ctx := context.Background()
	store, _ := newProjectStore(t)

	require.NoError(t, store.WriteFile(ctx, "demo", "dir/one.txt", "1"))
	require.NoError(t, store.WriteFile(ctx, "demo", "dir/two.txt", "2"))

	// Directories go recursively.
	require.NoError(t, store.DeleteFile(ctx, "demo", "dir"))
	_, err := store.ReadFile(ctx, "demo", "dir/one.txt")
	require.ErrorIs(t, err, repository.ErrNotFound)

	require.ErrorIs(t, store.DeleteFile(ctx, "demo", "dir"), repository.ErrNotFound)
}

func TestRenameFile(t *testing.T) {
	ctx := context.Background()
	store, _ := newProjectStore(t)

	require.NoError(t, store.WriteFile(ctx, "demo", "old.txt", "data"))

	require.NoError(t, store.RenameFile(ctx, "demo", "old.txt", "deep/new.txt"))
	content, err := store.ReadFile(ctx, "demo", "deep/new.txt")
	require.NoError(t, err)
	require.Equal(t, "data", content)
	_, err = store.ReadFile(ctx, "demo", "old.txt")
	require.ErrorIs(t, err, repository.ErrNotFound)

	require.ErrorIs(t, store.RenameFile(ctx, "demo", "missing.txt", "x.txt"), repository.ErrNotFound)
}

func TestRenameFile_ExistingTargetUntouched(t *testing.T) {
	ctx := context.Background()
	store, _ := newProjectStore(t)

	require.NoError(t, store.WriteFile(ctx, "demo", "a.txt", "A"))
	require.NoError(t, store.WriteFile(ctx, "demo", "b.txt", "B"))

	require.ErrorIs(t, store.RenameFile(ctx, "demo", "a.txt", "b.txt"), repository.ErrExists)

	a, err := store.ReadFile(ctx, "demo", "a.txt")
	require.NoError(t, err)
	require.Equal(t, "A", a)
	b, err := store.ReadFile(ctx, "demo", "b.txt")
	require.NoError(t, err)
	require.Equal(t, "B", b)
}

func TestListFiles_TreeShape(t *testing.T) {
	ctx := context.Background()
	store, root := newProjectStore(t)

	require.NoError(t, store.WriteFile(ctx, "demo", "b.txt", "bb"))
	require.NoError(t, store.WriteFile(ctx, "demo", "a/inner.txt", "i"))
	require.NoError(t, store.WriteFile(ctx, "demo", "z/.hidden", "h"))
	require.NoError(t, os.WriteFile(
		filepath.Join(root, "projects", "demo", "files", ".dotfile"), []byte("d"), 0o644))

	tree, err := store.ListFiles(ctx, "demo", "")
	require.NoError(t, err)
	require.Len(t, tree, 3)

	// Directories first, then files, names ascending.
	require.Equal(t, "a", tree[0].Name)
	require.Equal(t, project.FileTypeDirectory, tree[0].Type)
	require.Equal(t, "z", tree[1].Name)
	require.Equal(t, "b.txt", tree[2].Name)
	require.Equal(t, project.FileTypeFile, tree[2].Type)
	require.Equal(t, int64(2), tree[2].Size)

	// Children are recursive with files-root-relative paths.
	require.Len(t, tree[0].Children, 1)
	require.Equal(t, "a/inner.txt", tree[0].Children[0].Path)

	// Hidden entries are invisible at every depth.
	require.Empty(t, tree[1].Children)
}

func TestListFiles_SubPath(t *testing.T) {
	ctx := context.Background()
	store, _ := newProjectStore(t)

	require.NoError(t, store.WriteFile(ctx, "demo", "docs/guide.md", "g"))

	sub, err := store.ListFiles(ctx, "demo", "docs")
	require.NoError(t, err)
	require.Len(t, sub, 1)
	require.Equal(t, "docs/guide.md", sub[0].Path)

	_, err = store.ListFiles(ctx, "demo", "missing")
	require.ErrorIs(t, err, repository.ErrNotFound)

	_, err = store.ListFiles(ctx, "demo", "../outside")
	require.ErrorIs(t, err, repository.ErrInvalidPath)
}
