package mcp

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/parleyhq/parley/internal/domain/session"
)

func registerSessionTools(server *sdkmcp.Server, sessions SessionService) {
	if sessions == nil {
		return
	}

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_sessions",
		Description: "List indexed sessions referencing a project, most recently updated first",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, args ListSessionsParams) (*sdkmcp.CallToolResult, SessionListResult, error) {
		list, err := sessions.ListByProject(ctx, args.ProjectID)
		if err != nil {
			return nil, SessionListResult{}, fmt.Errorf("list_sessions: %w", err)
		}
		return nil, SessionListResult{Sessions: list}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "touch_session",
		Description: "Record or refresh a session entry in the index",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, args TouchSessionParams) (*sdkmcp.CallToolResult, *session.Session, error) {
		sess, err := sessions.Touch(ctx, session.TouchRequest{
			ID:        args.ID,
			ProjectID: args.ProjectID,
			Title:     args.Title,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("touch_session: %w", err)
		}
		return nil, sess, nil
	})
}
