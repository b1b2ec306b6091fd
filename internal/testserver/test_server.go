// Package testserver wires a full MCP stack over a throwaway workspace
// for functional tests.
package testserver

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/parleyhq/parley/internal/domain/project"
	"github.com/parleyhq/parley/internal/domain/session"
	"github.com/parleyhq/parley/internal/fsstore"
	"github.com/parleyhq/parley/internal/mcp"
	"github.com/parleyhq/parley/internal/sqlite"
	"github.com/stretchr/testify/require"
)

type TestServer struct {
	Server *httptest.Server
	DB     *sqlite.DB

	// Root is the workspace directory on disk, for tests that assert on
	// the filesystem layout directly.
	Root string
}

func New(t *testing.T) *TestServer {
	t.Helper()

	root := t.TempDir()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.New(dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())

	index := sqlite.NewSessionIndex(db)
	store := fsstore.Open(root, nil)

	projectSvc := project.NewService(store, index, nil)
	sessionSvc := session.NewService(index, nil)

	server := mcp.NewServer(mcp.Config{
		Services: mcp.Services{
			Projects: projectSvc,
			Sessions: sessionSvc,
		},
	})

	mux := http.NewServeMux()
	mux.Handle("/mcp", mcp.NewHTTPHandler(server, nil))

	ts := &TestServer{
		Server: httptest.NewServer(mux),
		DB:     db,
		Root:   root,
	}

	t.Cleanup(func() {
		ts.Server.Close()
		_ = db.Close()
	})

	return ts
}
