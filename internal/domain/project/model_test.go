package project_test

import (
	"encoding/json"
	"testing"

	"github.com/parleyhq/parley/internal/domain/project"
	"github.com/stretchr/testify/require"
)

func TestFileMarshal_EmptyDirectory(t *testing.T) {
	node := project.File{
		Name: "empty",
		Path: "empty",
		Type: project.FileTypeDirectory,
	}

	data, err := json.Marshal(node)
	require.NoError(t, err)
	require.JSONEq(t, `{"name":"empty","path":"empty","type":"directory","children":[]}`, string(data))
}

func TestFileMarshal_ZeroByteFile(t *testing.T) {
	node := project.File{
		Name: "touchfile",
		Path: "touchfile",
		Type: project.FileTypeFile,
	}

	data, err := json.Marshal(node)
	require.NoError(t, err)
	require.JSONEq(t, `{"name":"touchfile","path":"touchfile","type":"file","size":0}`, string(data))
}

func TestFileMarshal_NestedTree(t *testing.T) {
	node := project.File{
		Name: "docs",
		Path: "docs",
		Type: project.FileTypeDirectory,
		Children: []project.File{
			{Name: "guide.md", Path: "docs/guide.md", Type: project.FileTypeFile, Size: 7},
		},
	}

	data, err := json.Marshal(node)
	require.NoError(t, err)
	require.JSONEq(t, `{
		"name": "docs",
		"path": "docs",
		"type": "directory",
		"children": [
			{"name": "guide.md", "path": "docs/guide.md", "type": "file", "size": 7}
		]
	}`, string(data))
}
