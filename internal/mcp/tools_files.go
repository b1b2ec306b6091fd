package mcp

import (
	"context"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// fileListResultSchema is the output schema for list_project_files. It is
// spelled out because schema inference cannot handle the recursive
// project.File type (Children []File).
var fileListResultSchema = &jsonschema.Schema{
	Type:     "object",
	Required: []string{"files"},
	Properties: map[string]*jsonschema.Schema{
		"files": {
			Type:  "array",
			Items: &jsonschema.Schema{Ref: "#/$defs/File"},
		},
	},
	Defs: map[string]*jsonschema.Schema{
		"File": {
			Type:     "object",
			Required: []string{"name", "path", "type"},
			Properties: map[string]*jsonschema.Schema{
				"name": {Type: "string"},
				"path": {Type: "string"},
				"type": {Type: "string", Enum: []any{"file", "directory"}},
				"size": {Type: "integer"},
				"children": {
					Type:  "array",
					Items: &jsonschema.Schema{Ref: "#/$defs/File"},
				},
			},
		},
	},
}

func registerFileTools(server *sdkmcp.Server, projects ProjectService) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:         "list_project_files",
		Description:  "List the file tree under a project's files root; hidden entries are excluded",
		OutputSchema: fileListResultSchema,
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, args ListFilesParams) (*sdkmcp.CallToolResult, FileListResult, error) {
		return nil, FileListResult{Files: projects.ListFiles(ctx, args.Slug, args.Path)}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "read_project_file",
		Description: "Read a project file as text; found=false when the file is missing or unreadable",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, args ReadFileParams) (*sdkmcp.CallToolResult, ReadFileResult, error) {
		content, ok := projects.ReadFile(ctx, args.Slug, args.Path)
		return nil, ReadFileResult{Found: ok, Content: content}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "write_project_file",
		Description: "Overwrite a project file, creating it and any missing parent directories",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, args WriteFileParams) (*sdkmcp.CallToolResult, WriteFileResult, error) {
		if err := projects.WriteFile(ctx, args.Slug, args.Path, args.Content); err != nil {
			return nil, WriteFileResult{}, fmt.Errorf("write_project_file: %w", err)
		}
		return nil, WriteFileResult{Written: true}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "create_project_file",
		Description: "Create a new project file; created=false when the target already exists",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, args CreateFileParams) (*sdkmcp.CallToolResult, CreateFileResult, error) {
		return nil, CreateFileResult{Created: projects.CreateFile(ctx, args.Slug, args.Path, args.Content)}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_project_file",
		Description: "Delete a project file or directory tree; deleted=false when the target is missing",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, args DeleteFileParams) (*sdkmcp.CallToolResult, DeleteFileResult, error) {
		return nil, DeleteFileResult{Deleted: projects.DeleteFile(ctx, args.Slug, args.Path)}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "rename_project_file",
		Description: "Rename or move a project file; never overwrites an existing destination",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, args RenameFileParams) (*sdkmcp.CallToolResult, RenameFileResult, error) {
		return nil, RenameFileResult{Renamed: projects.RenameFile(ctx, args.Slug, args.OldPath, args.NewPath)}, nil
	})
}
