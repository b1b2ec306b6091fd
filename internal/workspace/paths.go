// Package workspace defines the on-disk layout of a Parley workspace and
// the slug rules used to name project folders within it.
package workspace

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/parleyhq/parley/internal/repository"
)

const (
	// ProjectsDirName is the folder under the workspace root holding all projects.
	ProjectsDirName = "projects"
	// FilesDirName is the folder under each project holding user files.
	FilesDirName = "files"
	// ConfigFileName is the project config file; its presence marks project existence.
	ConfigFileName = "config.json"
	// GuidelinesFileName mirrors the guidelines config field when non-empty.
	GuidelinesFileName = "guidelines.md"
)

// Workspace derives canonical locations under an absolute workspace root.
// It performs no filesystem access.
type Workspace struct {
	Root string
}

// ProjectsDir returns the absolute path of the projects root.
func (w Workspace) ProjectsDir() string {
	return filepath.Join(w.Root, ProjectsDirName)
}

// ProjectDir returns the absolute path of a project folder.
func (w Workspace) ProjectDir(slug string) string {
	return filepath.Join(w.ProjectsDir(), slug)
}

// FilesDir returns the absolute path of a project's user file tree.
func (w Workspace) FilesDir(slug string) string {
	return filepath.Join(w.ProjectDir(slug), FilesDirName)
}

// ProjectDir returns the workspace-relative path of a project folder.
func ProjectDir(slug string) string {
	return path.Join(ProjectsDirName, slug)
}

// FilesDir returns the workspace-relative path of a project's file tree.
func FilesDir(slug string) string {
	return path.Join(ProjectDir(slug), FilesDirName)
}

// ConfigPath returns the workspace-relative path of a project's config.json.
func ConfigPath(slug string) string {
	return path.Join(ProjectDir(slug), ConfigFileName)
}

// GuidelinesPath returns the workspace-relative path of a project's guidelines.md.
func GuidelinesPath(slug string) string {
	return path.Join(ProjectDir(slug), GuidelinesFileName)
}

// CleanRelPath normalizes a slash-separated path relative to a project's
// files root. Absolute paths and paths escaping the root are rejected.
func CleanRelPath(p string) (string, error) {
	if strings.HasPrefix(p, "/") {
		return "", repository.ErrInvalidPath
	}
	cleaned := path.Clean(p)
	if cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", repository.ErrInvalidPath
	}
	if cleaned == "." {
		return "", nil
	}
	return cleaned, nil
}
