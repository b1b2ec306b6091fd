package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/parleyhq/parley/internal/domain/session"
	"github.com/parleyhq/parley/internal/repository"
)

// SessionIndex implements session.Index for SQLite
type SessionIndex struct {
	db *DB
}

// NewSessionIndex creates a new SessionIndex
func NewSessionIndex(db *DB) *SessionIndex {
	return &SessionIndex{db: db}
}

// Record upserts a session entry
func (r *SessionIndex) Record(ctx context.Context, sess *session.Session) error {
	query := `
		INSERT INTO sessions (id, project_id, title, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			project_id = excluded.project_id,
			title = excluded.title,
			updated_at = excluded.updated_at
	`

	_, err := r.db.ExecContext(ctx, query,
		sess.ID,
		sess.ProjectID,
		sess.Title,
		sess.CreatedAt,
		sess.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record session: %w", err)
	}
	return nil
}

// Get retrieves a session entry by ID
func (r *SessionIndex) Get(ctx context.Context, id string) (*session.Session, error) {
	query := `
		SELECT id, project_id, title, created_at, updated_at
		FROM sessions
		WHERE id = ?
	`

	var sess session.Session
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&sess.ID,
		&sess.ProjectID,
		&sess.Title,
		&sess.CreatedAt,
		&sess.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return &sess, nil
}

// ListByProject returns session entries referencing a project, most
// recently updated first
func (r *SessionIndex) ListByProject(ctx context.Context, projectID string) ([]session.Session, error) {
	query := `
		SELECT id, project_id, title, created_at, updated_at
		FROM sessions
		WHERE project_id = ?
		ORDER BY updated_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []session.Session
	for rows.Next() {
		var sess session.Session
		err := rows.Scan(
			&sess.ID,
			&sess.ProjectID,
			&sess.Title,
			&sess.CreatedAt,
			&sess.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, sess)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating session rows: %w", err)
	}
	return sessions, nil
}

// CountByProject reports how many sessions reference a project
func (r *SessionIndex) CountByProject(ctx context.Context, projectID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sessions WHERE project_id = ?`, projectID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count sessions: %w", err)
	}
	return count, nil
}

// Delete removes a session entry
func (r *SessionIndex) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
