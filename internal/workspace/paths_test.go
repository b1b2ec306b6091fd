package workspace_test

import (
	"testing"

	"github.com/parleyhq/parley/internal/repository"
	"github.com/parleyhq/parley/internal/workspace"
	"github.com/stretchr/testify/require"
)

func TestRelativePaths(t *testing.T) {
	require.Equal(t, "projects/demo", workspace.ProjectDir("demo"))
	require.Equal(t, "projects/demo/files", workspace.FilesDir("demo"))
	require.Equal(t, "projects/demo/config.json", workspace.ConfigPath("demo"))
	require.Equal(t, "projects/demo/guidelines.md", workspace.GuidelinesPath("demo"))
}

func TestCleanRelPath(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		invalid bool
	}{
		{"notes.md", "notes.md", false},
		{"a/b/c.txt", "a/b/c.txt", false},
		{"a//b", "a/b", false},
		{"a/./b", "a/b", false},
		{"a/x/../b", "a/b", false},
		{".", "", false},
		{"", "", false},
		{"/etc/passwd", "", true},
		{"..", "", true},
		{"../escape", "", true},
		{"a/../../escape", "", true},
	}
	for _, tc := range cases {
		got, err := workspace.CleanRelPath(tc.in)
		if tc.invalid {
			require.ErrorIs(t, err, repository.ErrInvalidPath, "input %q", tc.in)
			continue
		}
		require.NoError(t, err, "input %q", tc.in)
		require.Equal(t, tc.want, got, "input %q", tc.in)
	}
}
