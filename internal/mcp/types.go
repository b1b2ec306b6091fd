package mcp

import (
	"github.com/parleyhq/parley/internal/domain/project"
	"github.com/parleyhq/parley/internal/domain/session"
)

type CreateProjectParams struct {
	Name               string   `json:"name" jsonschema:"Project display name"`
	Description        string   `json:"description,omitempty" jsonschema:"Project description"`
	Guidelines         string   `json:"guidelines,omitempty" jsonschema:"Project guidelines, mirrored to guidelines.md when non-empty"`
	EnabledSourceSlugs []string `json:"enabledSourceSlugs,omitempty" jsonschema:"External source identifiers enabled for this project"`
}

type GetProjectParams struct {
	Slug string `json:"slug" jsonschema:"Project folder slug"`
}

type UpdateProjectParams struct {
	Slug               string    `json:"slug" jsonschema:"Project folder slug"`
	Name               *string   `json:"name,omitempty" jsonschema:"New display name"`
	Description        *string   `json:"description,omitempty" jsonschema:"New description"`
	Guidelines         *string   `json:"guidelines,omitempty" jsonschema:"New guidelines; empty string removes guidelines.md"`
	EnabledSourceSlugs *[]string `json:"enabledSourceSlugs,omitempty" jsonschema:"New enabled source identifiers"`
}

type ListProjectsParams struct{}

type ProjectResult struct {
	Found   bool            `json:"found"`
	Project *project.Config `json:"project,omitempty"`
}

type ProjectSummaryResult struct {
	Found   bool             `json:"found"`
	Summary *project.Summary `json:"summary,omitempty"`
}

type ProjectListResult struct {
	Projects []project.Summary `json:"projects"`
}

type DeleteProjectResult struct {
	Deleted bool `json:"deleted"`
}

type ListFilesParams struct {
	Slug string `json:"slug" jsonschema:"Project folder slug"`
	Path string `json:"path,omitempty" jsonschema:"Subdirectory relative to the project files root; omit for the root"`
}

type FileListResult struct {
	Files []project.File `json:"files"`
}

type ReadFileParams struct {
	Slug string `json:"slug" jsonschema:"Project folder slug"`
	Path string `json:"path" jsonschema:"File path relative to the project files root"`
}

type ReadFileResult struct {
	Found   bool   `json:"found"`
	Content string `json:"content,omitempty"`
}

type WriteFileParams struct {
	Slug    string `json:"slug" jsonschema:"Project folder slug"`
	Path    string `json:"path" jsonschema:"File path relative to the project files root"`
	Content string `json:"content" jsonschema:"New file contents"`
}

type WriteFileResult struct {
	Written bool `json:"written"`
}

type CreateFileParams struct {
	Slug    string `json:"slug" jsonschema:"Project folder slug"`
	Path    string `json:"path" jsonschema:"File path relative to the project files root"`
	Content string `json:"content,omitempty" jsonschema:"Initial file contents"`
}

type CreateFileResult struct {
	Created bool `json:"created"`
}

type DeleteFileParams struct {
	Slug string `json:"slug" jsonschema:"Project folder slug"`
	Path string `json:"path" jsonschema:"File or directory path relative to the project files root"`
}

type DeleteFileResult struct {
	Deleted bool `json:"deleted"`
}

type RenameFileParams struct {
	Slug    string `json:"slug" jsonschema:"Project folder slug"`
	OldPath string `json:"oldPath" jsonschema:"Current path relative to the project files root"`
	NewPath string `json:"newPath" jsonschema:"New path relative to the project files root"`
}

type RenameFileResult struct {
	Renamed bool `json:"renamed"`
}

type ListSessionsParams struct {
	ProjectID string `json:"projectId" jsonschema:"Project id to list sessions for"`
}

type SessionListResult struct {
	Sessions []session.Session `json:"sessions"`
}

type TouchSessionParams struct {
	ID        string `json:"id,omitempty" jsonschema:"Session id; omit to allocate one"`
	ProjectID string `json:"projectId,omitempty" jsonschema:"Project id the session belongs to"`
	Title     string `json:"title,omitempty" jsonschema:"Session title"`
}
