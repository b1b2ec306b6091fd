package fsstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/go-git/go-billy/v5/util"
	"github.com/parleyhq/parley/internal/domain/project"
	"github.com/parleyhq/parley/internal/repository"
	"github.com/parleyhq/parley/internal/workspace"
)

// LoadConfig reads and parses a project's config.json. A missing or
// malformed file both report repository.ErrNotFound: config.json presence
// is the sole existence marker, and a config the store cannot parse marks
// the project as nonexistent rather than failing the caller.
func (s *Store) LoadConfig(_ context.Context, slug string) (*project.Config, error) {
	data, err := util.ReadFile(s.fs, workspace.ConfigPath(slug))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("reading config for %q: %w", slug, err)
	}

	var cfg project.Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		s.logger.Warn("malformed config.json", "slug", slug, "error", err)
		return nil, fmt.Errorf("%w: malformed config.json", repository.ErrNotFound)
	}
	return &cfg, nil
}

// SaveConfig overwrites a project's config.json, creating the project
// folder if needed and stamping UpdatedAt. Full overwrite; partial merge
// happens in UpdateProject.
func (s *Store) SaveConfig(_ context.Context, slug string, cfg *project.Config) error {
	if err := s.fs.MkdirAll(workspace.ProjectDir(slug), 0o755); err != nil {
		return fmt.Errorf("creating project dir for %q: %w", slug, err)
	}

	cfg.UpdatedAt = s.now().UnixMilli()
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config for %q: %w", slug, err)
	}
	if err := util.WriteFile(s.fs, workspace.ConfigPath(slug), data, 0o644); err != nil {
		return fmt.Errorf("writing config for %q: %w", slug, err)
	}
	return nil
}

// writeGuidelines mirrors the guidelines config field to guidelines.md:
// written when non-empty, removed when empty.
func (s *Store) writeGuidelines(slug, guidelines string) error {
	target := workspace.GuidelinesPath(slug)
	if guidelines == "" {
		err := s.fs.Remove(target)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("removing guidelines for %q: %w", slug, err)
		}
		return nil
	}
	if err := util.WriteFile(s.fs, target, []byte(guidelines), 0o644); err != nil {
		return fmt.Errorf("writing guidelines for %q: %w", slug, err)
	}
	return nil
}
