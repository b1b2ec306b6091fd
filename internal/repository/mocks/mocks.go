package mocks

import (
	"context"

	"github.com/parleyhq/parley/internal/domain/project"
	"github.com/parleyhq/parley/internal/domain/session"
	"github.com/stretchr/testify/mock"
)

// ProjectStore is a mock for project.Store.
type ProjectStore struct {
	mock.Mock
}

func (m *ProjectStore) CreateProject(ctx context.Context, req project.CreateRequest) (*project.Config, error) {
	args := m.Called(ctx, req)
	if cfg, ok := args.Get(0).(*project.Config); ok {
		return cfg, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectStore) LoadConfig(ctx context.Context, slug string) (*project.Config, error) {
	args := m.Called(ctx, slug)
	if cfg, ok := args.Get(0).(*project.Config); ok {
		return cfg, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectStore) SaveConfig(ctx context.Context, slug string, cfg *project.Config) error {
	args := m.Called(ctx, slug, cfg)
	return args.Error(0)
}

func (m *ProjectStore) UpdateProject(ctx context.Context, slug string, updates project.UpdateRequest) (*project.Config, error) {
	args := m.Called(ctx, slug, updates)
	if cfg, ok := args.Get(0).(*project.Config); ok {
		return cfg, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectStore) DeleteProject(ctx context.Context, slug string) error {
	args := m.Called(ctx, slug)
	return args.Error(0)
}

func (m *ProjectStore) ListProjects(ctx context.Context) ([]project.Summary, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]project.Summary); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectStore) GetSummary(ctx context.Context, slug string) (*project.Summary, error) {
	args := m.Called(ctx, slug)
	if summary, ok := args.Get(0).(*project.Summary); ok {
		return summary, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectStore) ListFiles(ctx context.Context, slug, subPath string) ([]project.File, error) {
	args := m.Called(ctx, slug, subPath)
	if files, ok := args.Get(0).([]project.File); ok {
		return files, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectStore) ReadFile(ctx context.Context, slug, filePath string) (string, error) {
	args := m.Called(ctx, slug, filePath)
	return args.String(0), args.Error(1)
}

func (m *ProjectStore) WriteFile(ctx context.Context, slug, filePath, content string) error {
	args := m.Called(ctx, slug, filePath, content)
	return args.Error(0)
}

func (m *ProjectStore) CreateFile(ctx context.Context, slug, filePath, content string) error {
	args := m.Called(ctx, slug, filePath, content)
	return args.Error(0)
}

func (m *ProjectStore) DeleteFile(ctx context.Context, slug, filePath string) error {
	args := m.Called(ctx, slug, filePath)
	return args.Error(0)
}

func (m *ProjectStore) RenameFile(ctx context.Context, slug, oldPath, newPath string) error {
	args := m.Called(ctx, slug, oldPath, newPath)
	return args.Error(0)
}

// SessionIndex is a mock for session.Index.
type SessionIndex struct {
	mock.Mock
}

func (m *SessionIndex) Record(ctx context.Context, sess *session.Session) error {
	args := m.Called(ctx, sess)
	return args.Error(0)
}

func (m *SessionIndex) Get(ctx context.Context, id string) (*session.Session, error) {
	args := m.Called(ctx, id)
	if sess, ok := args.Get(0).(*session.Session); ok {
		return sess, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *SessionIndex) ListByProject(ctx context.Context, projectID string) ([]session.Session, error) {
	args := m.Called(ctx, projectID)
	if list, ok := args.Get(0).([]session.Session); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *SessionIndex) CountByProject(ctx context.Context, projectID string) (int, error) {
	args := m.Called(ctx, projectID)
	return args.Int(0), args.Error(1)
}

func (m *SessionIndex) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
