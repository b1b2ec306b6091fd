package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "parley://docs/layout",
		Name:        "workspace-layout",
		Title:       "Workspace layout",
		Description: "The on-disk contract of a Parley workspace",
		Content: `# Workspace layout

A workspace mirrors project metadata and files directly on disk:

    {workspace}/projects/{slug}/
      config.json    — project config, pretty-printed JSON, 2-space indent
      guidelines.md  — present only while guidelines are non-empty
      files/         — arbitrary user file tree

- The slug doubles as the folder name and never changes after creation.
- config.json presence is the sole existence marker: a folder without a
  readable config.json is not a project.
- Entries under files/ whose name starts with '.' stay on disk but are
  invisible to listing and counting.
- Sessions reference projects by id and live in the host application's
  session store; deleting a project orphans them rather than cascading.
`,
	},
	{
		URI:         "parley://docs/contracts",
		Name:        "tool-contracts",
		Title:       "Tool contracts",
		Description: "Failure semantics of the workspace tools",
		Content: `# Tool contracts

Two failure policies, by operation class:

- Query tools (get_project, get_project_summary, list_projects,
  list_project_files, read_project_file) never fail on missing or
  unreadable state: they report found=false or an empty list.
- Boolean mutations (delete_project, create_project_file,
  delete_project_file, rename_project_file) report failure via a false
  flag and swallow the underlying cause.
- create_project and write_project_file propagate real filesystem errors
  so top-level action flows can observe them.

No tool retries; every filesystem error is terminal for that call.
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		doc := doc

		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
