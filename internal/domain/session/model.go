package session

// Session is lightweight metadata about a conversational session owned by
// the host application. The index only mirrors enough to answer
// per-project counts and listings; transcript content lives elsewhere.
type Session struct {
	ID        string `json:"id"`
	ProjectID string `json:"projectId,omitempty"`
	Title     string `json:"title,omitempty"`
	CreatedAt int64  `json:"createdAt"`
	UpdatedAt int64  `json:"updatedAt"`
}
