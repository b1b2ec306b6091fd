package workspace_test

import (
	"strings"
	"testing"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/parleyhq/parley/internal/workspace"
	"github.com/stretchr/testify/require"
)

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"My Plan", "my-plan"},
		{"  spaced  out  ", "spaced-out"},
		{"Héllo, Wörld!", "h-llo-w-rld"},
		{"UPPER_case.name", "upper-case-name"},
		{"---", "project"},
		{"", "project"},
		{"日本語", "project"},
		{"a", "a"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, workspace.GenerateSlug(tc.name), "input %q", tc.name)
	}
}

func TestGenerateSlug_Caps(t *testing.T) {
	long := strings.Repeat("ab ", 40)
	slug := workspace.GenerateSlug(long)
	require.LessOrEqual(t, len(slug), 50)
	require.False(t, strings.HasSuffix(slug, "-"))
}

func TestUniqueProjectSlug_Probes(t *testing.T) {
	fsys := osfs.New(t.TempDir())
	require.NoError(t, fsys.MkdirAll("projects/x", 0o755))
	require.NoError(t, fsys.MkdirAll("projects/x-2", 0o755))

	slug, err := workspace.UniqueProjectSlug(fsys, "projects", "X")
	require.NoError(t, err)
	require.Equal(t, "x-3", slug)
}

func TestUniqueProjectSlug_FirstFree(t *testing.T) {
	fsys := osfs.New(t.TempDir())

	slug, err := workspace.UniqueProjectSlug(fsys, "projects", "Fresh Name")
	require.NoError(t, err)
	require.Equal(t, "fresh-name", slug)
}
