package project

import "encoding/json"

// IDPrefix is the fixed prefix of generated project identifiers.
const IDPrefix = "proj-"

// Config is the persisted shape of a project, stored as config.json in the
// project folder. Field names match the on-disk contract other tooling
// depends on.
type Config struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Slug               string   `json:"slug"`
	Description        string   `json:"description,omitempty"`
	Guidelines         string   `json:"guidelines,omitempty"`
	CreatedAt          int64    `json:"createdAt"`
	UpdatedAt          int64    `json:"updatedAt"`
	EnabledSourceSlugs []string `json:"enabledSourceSlugs,omitempty"`
}

// Summary is a derived listing view of a project. SessionCount comes from
// the session index; FileCount from a recursive walk of the files tree.
type Summary struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Description  string `json:"description,omitempty"`
	CreatedAt    int64  `json:"createdAt"`
	UpdatedAt    int64  `json:"updatedAt"`
	SessionCount int    `json:"sessionCount"`
	FileCount    int    `json:"fileCount"`
}

// FileType distinguishes tree node kinds.
type FileType string

const (
	FileTypeFile      FileType = "file"
	FileTypeDirectory FileType = "directory"
)

// File is a node in a project's user file tree. Path is slash-separated
// and relative to the project's files root.
type File struct {
	Name     string   `json:"name"`
	Path     string   `json:"path"`
	Type     FileType `json:"type"`
	Size     int64    `json:"size,omitempty"`
	Children []File   `json:"children,omitempty"`
}

// MarshalJSON keeps the two node shapes distinct: directories always carry
// children (an empty list included, never size), files always carry size
// (zero included, never children).
func (f File) MarshalJSON() ([]byte, error) {
	if f.Type == FileTypeDirectory {
		children := f.Children
		if children == nil {
			children = []File{}
		}
		return json.Marshal(struct {
			Name     string   `json:"name"`
			Path     string   `json:"path"`
			Type     FileType `json:"type"`
			Children []File   `json:"children"`
		}{f.Name, f.Path, f.Type, children})
	}
	return json.Marshal(struct {
		Name string   `json:"name"`
		Path string   `json:"path"`
		Type FileType `json:"type"`
		Size int64    `json:"size"`
	}{f.Name, f.Path, f.Type, f.Size})
}

// CreateRequest defines project creation inputs.
type CreateRequest struct {
	Name               string
	Description        string
	Guidelines         string
	EnabledSourceSlugs []string
}

// UpdateRequest carries a partial merge; nil fields are left untouched.
// A non-nil empty Guidelines removes guidelines.md.
type UpdateRequest struct {
	Name               *string
	Description        *string
	Guidelines         *string
	EnabledSourceSlugs *[]string
}
