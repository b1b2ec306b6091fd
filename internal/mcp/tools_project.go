package mcp

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/parleyhq/parley/internal/domain/project"
)

func registerProjectTools(server *sdkmcp.Server, projects ProjectService) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "create_project",
		Description: "Create a new project folder with a unique slug derived from its name",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, args CreateProjectParams) (*sdkmcp.CallToolResult, *project.Config, error) {
		cfg, err := projects.Create(ctx, project.CreateRequest{
			Name:               args.Name,
			Description:        args.Description,
			Guidelines:         args.Guidelines,
			EnabledSourceSlugs: args.EnabledSourceSlugs,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("create_project: %w", err)
		}
		return nil, cfg, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_project",
		Description: "Load a project config by slug; found=false when the project does not exist",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, args GetProjectParams) (*sdkmcp.CallToolResult, ProjectResult, error) {
		cfg := projects.Load(ctx, args.Slug)
		return nil, ProjectResult{Found: cfg != nil, Project: cfg}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_project_summary",
		Description: "Get a project summary with session and file counts",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, args GetProjectParams) (*sdkmcp.CallToolResult, ProjectSummaryResult, error) {
		summary := projects.GetSummary(ctx, args.Slug)
		return nil, ProjectSummaryResult{Found: summary != nil, Summary: summary}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_projects",
		Description: "List all projects in the workspace, most recently updated first",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, args ListProjectsParams) (*sdkmcp.CallToolResult, ProjectListResult, error) {
		return nil, ProjectListResult{Projects: projects.List(ctx)}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_project",
		Description: "Merge changes into a project config; setting guidelines to an empty string removes guidelines.md",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, args UpdateProjectParams) (*sdkmcp.CallToolResult, ProjectResult, error) {
		cfg, err := projects.Update(ctx, args.Slug, project.UpdateRequest{
			Name:               args.Name,
			Description:        args.Description,
			Guidelines:         args.Guidelines,
			EnabledSourceSlugs: args.EnabledSourceSlugs,
		})
		if err != nil {
			return nil, ProjectResult{}, fmt.Errorf("update_project: %w", err)
		}
		return nil, ProjectResult{Found: cfg != nil, Project: cfg}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_project",
		Description: "Delete a project folder recursively; sessions keep their now-orphaned project reference",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, args GetProjectParams) (*sdkmcp.CallToolResult, DeleteProjectResult, error) {
		return nil, DeleteProjectResult{Deleted: projects.Delete(ctx, args.Slug)}, nil
	})
}
