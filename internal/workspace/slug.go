package workspace

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	billy "github.com/go-git/go-billy/v5"
)

const (
	slugMaxLen   = 50
	slugFallback = "project"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// GenerateSlug derives a folder-safe slug from a display name: lowercase,
// runs of non-alphanumerics collapsed to a single '-', trimmed, capped at
// 50 characters. Names with no alphanumeric content yield "project".
func GenerateSlug(name string) string {
	slug := strings.ToLower(name)
	slug = nonAlphanumeric.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if len(slug) > slugMaxLen {
		slug = slug[:slugMaxLen]
		slug = strings.TrimRight(slug, "-")
	}
	if slug == "" {
		return slugFallback
	}
	return slug
}

// UniqueProjectSlug returns the first unused folder name for the given
// display name under projectsDir, probing {slug}, {slug}-2, {slug}-3, …
// The check-then-use sequence is not atomic against concurrent creators;
// the workspace is single-process by design.
func UniqueProjectSlug(fsys billy.Filesystem, projectsDir, name string) (string, error) {
	base := GenerateSlug(name)
	slug := base
	for n := 2; ; n++ {
		_, err := fsys.Stat(fsys.Join(projectsDir, slug))
		if os.IsNotExist(err) {
			return slug, nil
		}
		if err != nil {
			return "", fmt.Errorf("probing slug %q: %w", slug, err)
		}
		slug = fmt.Sprintf("%s-%d", base, n)
	}
}
