package project

import "context"

// Store provides filesystem-backed persistence for projects and their files.
type Store interface {
	CreateProject(ctx context.Context, req CreateRequest) (*Config, error)
	LoadConfig(ctx context.Context, slug string) (*Config, error)
	SaveConfig(ctx context.Context, slug string, cfg *Config) error
	UpdateProject(ctx context.Context, slug string, updates UpdateRequest) (*Config, error)
	DeleteProject(ctx context.Context, slug string) error
	ListProjects(ctx context.Context) ([]Summary, error)
	GetSummary(ctx context.Context, slug string) (*Summary, error)

	ListFiles(ctx context.Context, slug, subPath string) ([]File, error)
	ReadFile(ctx context.Context, slug, filePath string) (string, error)
	WriteFile(ctx context.Context, slug, filePath, content string) error
	CreateFile(ctx context.Context, slug, filePath, content string) error
	DeleteFile(ctx context.Context, slug, filePath string) error
	RenameFile(ctx context.Context, slug, oldPath, newPath string) error
}

// SessionCounter supplies per-project session counts. Sessions are owned
// by the host application's session store, not by this layer.
type SessionCounter interface {
	CountByProject(ctx context.Context, projectID string) (int, error)
}
