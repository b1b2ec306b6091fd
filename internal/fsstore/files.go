package fsstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/go-git/go-billy/v5/util"
	"github.com/parleyhq/parley/internal/domain/project"
	"github.com/parleyhq/parley/internal/repository"
	"github.com/parleyhq/parley/internal/workspace"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ListFiles returns the tree under subPath of the project's files root
// (the root itself when subPath is empty). Entries whose name starts with
// '.' are invisible. Directories sort before files; names sort ascending
// under locale collation. Directory nodes carry their children
// recursively; file nodes carry their size in bytes.
func (s *Store) ListFiles(_ context.Context, slug, subPath string) ([]project.File, error) {
	rel, err := workspace.CleanRelPath(subPath)
	if err != nil {
		return nil, err
	}
	dir := path.Join(workspace.FilesDir(slug), rel)

	col := collate.New(language.Und)
	files, err := s.listTree(dir, rel, col)
	if err != nil {
		return nil, err
	}
	return files, nil
}

func (s *Store) listTree(dir, rel string, col *collate.Collator) ([]project.File, error) {
	entries, err := s.fs.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("listing %q: %w", dir, err)
	}

	files := make([]project.File, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		node := project.File{
			Name: name,
			Path: path.Join(rel, name),
		}
		if entry.IsDir() {
			node.Type = project.FileTypeDirectory
			children, err := s.listTree(path.Join(dir, name), node.Path, col)
			if err != nil {
				return nil, err
			}
			node.Children = children
		} else {
			node.Type = project.FileTypeFile
			node.Size = entry.Size()
		}
		files = append(files, node)
	}

	sort.SliceStable(files, func(i, j int) bool {
		if files[i].Type != files[j].Type {
			return files[i].Type == project.FileTypeDirectory
		}
		return col.CompareString(files[i].Name, files[j].Name) < 0
	})
	return files, nil
}

// ReadFile returns the file contents decoded as text.
func (s *Store) ReadFile(_ context.Context, slug, filePath string) (string, error) {
	target, err := s.resolve(slug, filePath)
	if err != nil {
		return "", err
	}
	f, err := s.fs.Open(target)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", repository.ErrNotFound
		}
		return "", fmt.Errorf("opening %q: %w", filePath, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("reading %q: %w", filePath, err)
	}
	return string(data), nil
}

// WriteFile overwrites the file with content, creating missing parent
// directories and the file itself as needed.
func (s *Store) WriteFile(_ context.Context, slug, filePath, content string) error {
	target, err := s.resolve(slug, filePath)
	if err != nil {
		return err
	}
	if err := s.fs.MkdirAll(path.Dir(target), 0o755); err != nil {
		return fmt.Errorf("creating parent dirs for %q: %w", filePath, err)
	}
	if err := util.WriteFile(s.fs, target, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %q: %w", filePath, err)
	}
	return nil
}

// CreateFile creates a new file with content, failing with
// repository.ErrExists when the target is already present. The exclusive
// create flag closes the check-then-write race; an existing file is never
// touched.
func (s *Store) CreateFile(_ context.Context, slug, filePath, content string) error {
	target, err := s.resolve(slug, filePath)
	if err != nil {
		return err
	}
	if err := s.fs.MkdirAll(path.Dir(target), 0o755); err != nil {
		return fmt.Errorf("creating parent dirs for %q: %w", filePath, err)
	}

	f, err := s.fs.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return repository.ErrExists
		}
		return fmt.Errorf("creating %q: %w", filePath, err)
	}
	defer f.Close()

	if _, err := f.Write([]byte(content)); err != nil {
		return fmt.Errorf("writing %q: %w", filePath, err)
	}
	return nil
}

// DeleteFile removes a file, or a directory recursively.
func (s *Store) DeleteFile(_ context.Context, slug, filePath string) error {
	target, err := s.resolve(slug, filePath)
	if err != nil {
		return err
	}
	info, err := s.fs.Stat(target)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return repository.ErrNotFound
		}
		return fmt.Errorf("checking %q: %w", filePath, err)
	}

	if info.IsDir() {
		if err := util.RemoveAll(s.fs, target); err != nil {
			return fmt.Errorf("removing %q: %w", filePath, err)
		}
		return nil
	}
	if err := s.fs.Remove(target); err != nil {
		return fmt.Errorf("removing %q: %w", filePath, err)
	}
	return nil
}

// RenameFile moves oldPath to newPath, creating missing destination
// parents. A missing source reports repository.ErrNotFound; an existing
// destination reports repository.ErrExists and leaves both paths
// unchanged. The rename itself is atomic at the OS level.
func (s *Store) RenameFile(_ context.Context, slug, oldPath, newPath string) error {
	from, err := s.resolve(slug, oldPath)
	if err != nil {
		return err
	}
	to, err := s.resolve(slug, newPath)
	if err != nil {
		return err
	}

	if _, err := s.fs.Stat(from); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return repository.ErrNotFound
		}
		return fmt.Errorf("checking %q: %w", oldPath, err)
	}
	if _, err := s.fs.Stat(to); err == nil {
		return repository.ErrExists
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("checking %q: %w", newPath, err)
	}

	if err := s.fs.MkdirAll(path.Dir(to), 0o755); err != nil {
		return fmt.Errorf("creating parent dirs for %q: %w", newPath, err)
	}
	if err := s.fs.Rename(from, to); err != nil {
		return fmt.Errorf("renaming %q to %q: %w", oldPath, newPath, err)
	}
	return nil
}

// resolve maps a caller-supplied slash path to a workspace-relative path
// under the project's files root.
func (s *Store) resolve(slug, filePath string) (string, error) {
	rel, err := workspace.CleanRelPath(filePath)
	if err != nil {
		return "", err
	}
	if rel == "" {
		return "", repository.ErrInvalidPath
	}
	return path.Join(workspace.FilesDir(slug), rel), nil
}
