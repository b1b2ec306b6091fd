package fsstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-git/go-billy/v5/util"
	"github.com/google/uuid"
	"github.com/parleyhq/parley/internal/domain/project"
	"github.com/parleyhq/parley/internal/repository"
	"github.com/parleyhq/parley/internal/workspace"
)

// CreateProject allocates an id and a unique slug, creates the project
// folder with its files/ subdirectory, and writes config.json. Guidelines
// are mirrored to guidelines.md only when non-empty. Filesystem failures
// propagate; callers on the top-level action flow observe them.
func (s *Store) CreateProject(_ context.Context, req project.CreateRequest) (*project.Config, error) {
	slug, err := workspace.UniqueProjectSlug(s.fs, workspace.ProjectsDirName, req.Name)
	if err != nil {
		return nil, err
	}

	nowMs := s.now().UnixMilli()
	cfg := &project.Config{
		ID:                 newProjectID(),
		Name:               req.Name,
		Slug:               slug,
		Description:        req.Description,
		Guidelines:         req.Guidelines,
		CreatedAt:          nowMs,
		UpdatedAt:          nowMs,
		EnabledSourceSlugs: req.EnabledSourceSlugs,
	}

	if err := s.fs.MkdirAll(workspace.FilesDir(slug), 0o755); err != nil {
		return nil, fmt.Errorf("creating project folders for %q: %w", slug, err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding config for %q: %w", slug, err)
	}
	if err := util.WriteFile(s.fs, workspace.ConfigPath(slug), data, 0o644); err != nil {
		return nil, fmt.Errorf("writing config for %q: %w", slug, err)
	}

	if req.Guidelines != "" {
		if err := s.writeGuidelines(slug, req.Guidelines); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// UpdateProject shallow-merges the recognized fields over the existing
// config and persists it. Touching Guidelines also mirrors guidelines.md,
// deleting it when the new value is empty.
func (s *Store) UpdateProject(ctx context.Context, slug string, updates project.UpdateRequest) (*project.Config, error) {
	cfg, err := s.LoadConfig(ctx, slug)
	if err != nil {
		return nil, err
	}

	if updates.Name != nil {
		cfg.Name = *updates.Name
	}
	if updates.Description != nil {
		cfg.Description = *updates.Description
	}
	if updates.Guidelines != nil {
		cfg.Guidelines = *updates.Guidelines
	}
	if updates.EnabledSourceSlugs != nil {
		cfg.EnabledSourceSlugs = *updates.EnabledSourceSlugs
	}

	if err := s.SaveConfig(ctx, slug, cfg); err != nil {
		return nil, err
	}

	if updates.Guidelines != nil {
		if err := s.writeGuidelines(slug, cfg.Guidelines); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// DeleteProject removes the project folder recursively. Sessions
// referencing the project are untouched and become orphaned.
func (s *Store) DeleteProject(_ context.Context, slug string) error {
	dir := workspace.ProjectDir(slug)
	if _, err := s.fs.Stat(dir); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return repository.ErrNotFound
		}
		return fmt.Errorf("checking project %q: %w", slug, err)
	}
	if err := util.RemoveAll(s.fs, dir); err != nil {
		return fmt.Errorf("removing project %q: %w", slug, err)
	}
	return nil
}

// ListProjects builds a summary per project folder, skipping directories
// without a readable config.json, sorted most recently updated first.
// Ties keep directory-listing order.
func (s *Store) ListProjects(ctx context.Context) ([]project.Summary, error) {
	entries, err := s.fs.ReadDir(workspace.ProjectsDirName)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []project.Summary{}, nil
		}
		return nil, fmt.Errorf("listing projects: %w", err)
	}

	summaries := make([]project.Summary, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		summary, err := s.GetSummary(ctx, entry.Name())
		if err != nil {
			continue
		}
		summaries = append(summaries, *summary)
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].UpdatedAt > summaries[j].UpdatedAt
	})
	return summaries, nil
}

// GetSummary loads the config and counts files under the files/ tree.
// Hidden entries are excluded from the count, matching the listing
// filter. Traversal failures yield a count of 0 for that subtree.
func (s *Store) GetSummary(ctx context.Context, slug string) (*project.Summary, error) {
	cfg, err := s.LoadConfig(ctx, slug)
	if err != nil {
		return nil, err
	}
	return &project.Summary{
		ID:          cfg.ID,
		Name:        cfg.Name,
		Slug:        cfg.Slug,
		Description: cfg.Description,
		CreatedAt:   cfg.CreatedAt,
		UpdatedAt:   cfg.UpdatedAt,
		FileCount:   s.countFiles(workspace.FilesDir(slug)),
	}, nil
}

func (s *Store) countFiles(dir string) int {
	count := 0
	_ = util.Walk(s.fs, dir, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // unreadable subtree counts as empty
		}
		if p != dir && strings.HasPrefix(info.Name(), ".") {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !info.IsDir() {
			count++
		}
		return nil
	})
	return count
}

func newProjectID() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return project.IDPrefix + hex[:8]
}
