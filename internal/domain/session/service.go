package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/parleyhq/parley/internal/repository"
)

// Service maintains the session-metadata index. It records which sessions
// reference which project; it never owns session content. Deleting a
// project leaves its sessions in the index with a dangling projectId.
type Service struct {
	index  Index
	logger *slog.Logger
	now    func() time.Time
}

// NewService creates a new session index service.
func NewService(index Index, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{index: index, logger: logger, now: time.Now}
}

// TouchRequest defines session upsert inputs.
type TouchRequest struct {
	ID        string
	ProjectID string
	Title     string
}

// Touch records or refreshes a session entry. A missing ID allocates one.
func (s *Service) Touch(ctx context.Context, req TouchRequest) (*Session, error) {
	id := req.ID
	if strings.TrimSpace(id) == "" {
		id = uuid.NewString()
	}

	nowMs := s.now().UnixMilli()
	sess := &Session{
		ID:        id,
		ProjectID: req.ProjectID,
		Title:     req.Title,
		CreatedAt: nowMs,
		UpdatedAt: nowMs,
	}
	if existing, err := s.index.Get(ctx, id); err == nil {
		sess.CreatedAt = existing.CreatedAt
		if sess.ProjectID == "" {
			sess.ProjectID = existing.ProjectID
		}
		if sess.Title == "" {
			sess.Title = existing.Title
		}
	}

	if err := s.index.Record(ctx, sess); err != nil {
		return nil, fmt.Errorf("recording session: %w", err)
	}
	return sess, nil
}

// Get fetches a session entry by ID.
func (s *Service) Get(ctx context.Context, id string) (*Session, error) {
	sess, err := s.index.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("getting session: %w", err)
	}
	return sess, nil
}

// ListByProject returns session entries referencing a project, most
// recently updated first.
func (s *Service) ListByProject(ctx context.Context, projectID string) ([]Session, error) {
	return s.index.ListByProject(ctx, projectID)
}

// CountByProject reports how many sessions reference a project.
func (s *Service) CountByProject(ctx context.Context, projectID string) (int, error) {
	return s.index.CountByProject(ctx, projectID)
}

// Forget drops a session entry from the index.
func (s *Service) Forget(ctx context.Context, id string) error {
	if err := s.index.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrSessionNotFound
		}
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}
