// Package fsstore implements project storage as a direct filesystem
// mirror under a workspace root: one folder per project holding
// config.json, an optional guidelines.md, and a files/ tree of user
// content. There is no cache and no background work; every operation is a
// plain filesystem call.
package fsstore

import (
	"log/slog"
	"time"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

// Store is a filesystem-backed project store. The billy filesystem is
// rooted at the workspace root, so all paths inside are workspace-relative.
type Store struct {
	fs     billy.Filesystem
	logger *slog.Logger
	now    func() time.Time
}

// Open creates a store over the OS filesystem rooted at workspaceRoot.
func Open(workspaceRoot string, logger *slog.Logger) *Store {
	return New(osfs.New(workspaceRoot), logger)
}

// New creates a store over an arbitrary billy filesystem rooted at the
// workspace root.
func New(fsys billy.Filesystem, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{fs: fsys, logger: logger, now: time.Now}
}
