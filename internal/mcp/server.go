// Package mcp exposes the project store to host applications as MCP tools
// with the documented parameter and return contracts.
package mcp

import (
	"context"
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/parleyhq/parley/internal/domain/project"
	"github.com/parleyhq/parley/internal/domain/session"
)

// ProjectService defines project operations needed by MCP.
type ProjectService interface {
	Create(ctx context.Context, req project.CreateRequest) (*project.Config, error)
	Load(ctx context.Context, slug string) *project.Config
	Update(ctx context.Context, slug string, updates project.UpdateRequest) (*project.Config, error)
	Delete(ctx context.Context, slug string) bool
	List(ctx context.Context) []project.Summary
	GetSummary(ctx context.Context, slug string) *project.Summary
	ListFiles(ctx context.Context, slug, subPath string) []project.File
	ReadFile(ctx context.Context, slug, filePath string) (string, bool)
	WriteFile(ctx context.Context, slug, filePath, content string) error
	CreateFile(ctx context.Context, slug, filePath, content string) bool
	DeleteFile(ctx context.Context, slug, filePath string) bool
	RenameFile(ctx context.Context, slug, oldPath, newPath string) bool
}

// SessionService defines session-index operations needed by MCP.
type SessionService interface {
	Touch(ctx context.Context, req session.TouchRequest) (*session.Session, error)
	ListByProject(ctx context.Context, projectID string) ([]session.Session, error)
}

// Services contains all domain services needed by MCP.
type Services struct {
	Projects ProjectService
	Sessions SessionService
}

// Config contains server configuration.
type Config struct {
	Services Services
	Logger   *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "parley-workspace",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	registerDocResources(server)

	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerProjectTools(server, cfg.Services.Projects)
	registerFileTools(server, cfg.Services.Projects)
	registerSessionTools(server, cfg.Services.Sessions)

	return server
}

const serverInstructions = `Parley workspace project store.

Projects are folders on disk grouping chat sessions and user files. Each
project has a config (name, description, guidelines, enabled sources), an
optional guidelines.md mirror, and a files/ tree of user content. Query
tools report missing state as found=false or empty lists; create and
write tools surface real filesystem failures as errors.`
