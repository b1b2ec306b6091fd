package session

import "context"

// Index provides persistence for session metadata.
type Index interface {
	Record(ctx context.Context, sess *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	ListByProject(ctx context.Context, projectID string) ([]Session, error)
	CountByProject(ctx context.Context, projectID string) (int, error)
	Delete(ctx context.Context, id string) error
}
