package project

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/parleyhq/parley/internal/repository"
)

// Service handles project operations for the host bridge. Query-shaped
// operations never fail: missing or unreadable state collapses to nil or
// empty results. Boolean mutations report failure via false. Create and
// WriteFile propagate I/O errors so top-level action flows can observe
// them.
type Service struct {
	store    Store
	sessions SessionCounter
	logger   *slog.Logger
}

// NewService creates a new project service. sessions may be nil when no
// session index is wired; counts then stay at zero.
func NewService(store Store, sessions SessionCounter, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{store: store, sessions: sessions, logger: logger}
}

// Create creates a new project. Filesystem failures propagate.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Config, error) {
	cfg, err := s.store.CreateProject(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}
	s.logger.Info("project created", "slug", cfg.Slug, "id", cfg.ID)
	return cfg, nil
}

// Load returns the project config, or nil if the project does not exist
// or its config cannot be read.
func (s *Service) Load(ctx context.Context, slug string) *Config {
	cfg, err := s.store.LoadConfig(ctx, slug)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.logger.Warn("load project failed", "slug", slug, "error", err)
		}
		return nil
	}
	return cfg
}

// Save overwrites the project config, stamping updatedAt.
func (s *Service) Save(ctx context.Context, slug string, cfg *Config) error {
	if err := s.store.SaveConfig(ctx, slug, cfg); err != nil {
		return fmt.Errorf("saving project config: %w", err)
	}
	return nil
}

// Update merges the recognized fields over the existing config. Returns
// nil with no filesystem writes when the project does not exist.
func (s *Service) Update(ctx context.Context, slug string, updates UpdateRequest) (*Config, error) {
	cfg, err := s.store.UpdateProject(ctx, slug, updates)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("updating project: %w", err)
	}
	return cfg, nil
}

// Delete removes the project folder recursively. Deleting a missing
// project is a no-op reported as false. Sessions referencing the project
// are left orphaned on purpose.
func (s *Service) Delete(ctx context.Context, slug string) bool {
	if err := s.store.DeleteProject(ctx, slug); err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.logger.Warn("delete project failed", "slug", slug, "error", err)
		}
		return false
	}
	s.logger.Info("project deleted", "slug", slug)
	return true
}

// List returns summaries of all projects, most recently updated first.
// Listing failures collapse to an empty slice.
func (s *Service) List(ctx context.Context) []Summary {
	summaries, err := s.store.ListProjects(ctx)
	if err != nil {
		s.logger.Warn("list projects failed", "error", err)
		return []Summary{}
	}
	for i := range summaries {
		summaries[i].SessionCount = s.countSessions(ctx, summaries[i].ID)
	}
	return summaries
}

// GetSummary returns the summary for one project, or nil if it does not exist.
func (s *Service) GetSummary(ctx context.Context, slug string) *Summary {
	summary, err := s.store.GetSummary(ctx, slug)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.logger.Warn("project summary failed", "slug", slug, "error", err)
		}
		return nil
	}
	summary.SessionCount = s.countSessions(ctx, summary.ID)
	return summary
}

// ListFiles returns the visible file tree under subPath, or an empty
// slice when the directory is missing or unreadable.
func (s *Service) ListFiles(ctx context.Context, slug, subPath string) []File {
	files, err := s.store.ListFiles(ctx, slug, subPath)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.logger.Warn("list files failed", "slug", slug, "path", subPath, "error", err)
		}
		return []File{}
	}
	return files
}

// ReadFile returns the file contents as text. ok is false when the file
// is missing or unreadable.
func (s *Service) ReadFile(ctx context.Context, slug, filePath string) (content string, ok bool) {
	content, err := s.store.ReadFile(ctx, slug, filePath)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.logger.Warn("read file failed", "slug", slug, "path", filePath, "error", err)
		}
		return "", false
	}
	return content, true
}

// WriteFile overwrites the file, creating missing parents. Filesystem
// failures propagate.
func (s *Service) WriteFile(ctx context.Context, slug, filePath, content string) error {
	if err := s.store.WriteFile(ctx, slug, filePath, content); err != nil {
		return fmt.Errorf("writing project file: %w", err)
	}
	return nil
}

// CreateFile creates a new file, reporting false when the target already
// exists. The existing file is left untouched.
func (s *Service) CreateFile(ctx context.Context, slug, filePath, content string) bool {
	if err := s.store.CreateFile(ctx, slug, filePath, content); err != nil {
		if !errors.Is(err, repository.ErrExists) {
			s.logger.Warn("create file failed", "slug", slug, "path", filePath, "error", err)
		}
		return false
	}
	return true
}

// DeleteFile removes a file or directory tree, reporting false when the
// target is missing or removal fails.
func (s *Service) DeleteFile(ctx context.Context, slug, filePath string) bool {
	if err := s.store.DeleteFile(ctx, slug, filePath); err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.logger.Warn("delete file failed", "slug", slug, "path", filePath, "error", err)
		}
		return false
	}
	return true
}

// RenameFile moves a file or directory. It never overwrites: a missing
// source or an existing destination reports false with both paths
// unchanged.
func (s *Service) RenameFile(ctx context.Context, slug, oldPath, newPath string) bool {
	if err := s.store.RenameFile(ctx, slug, oldPath, newPath); err != nil {
		if !errors.Is(err, repository.ErrNotFound) && !errors.Is(err, repository.ErrExists) {
			s.logger.Warn("rename file failed", "slug", slug, "from", oldPath, "to", newPath, "error", err)
		}
		return false
	}
	return true
}

func (s *Service) countSessions(ctx context.Context, projectID string) int {
	if s.sessions == nil {
		return 0
	}
	count, err := s.sessions.CountByProject(ctx, projectID)
	if err != nil {
		s.logger.Warn("session count failed", "project_id", projectID, "error", err)
		return 0
	}
	return count
}
