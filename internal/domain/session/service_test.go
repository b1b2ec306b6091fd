package session_test

import (
	"context"
	"testing"

	"github.com/parleyhq/parley/internal/domain/session"
	"github.com/parleyhq/parley/internal/repository"
	"github.com/parleyhq/parley/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSessionService_TouchAllocatesID(t *testing.T) {
	ctx := context.Background()

	index := &mocks.SessionIndex{}
	index.On("Get", ctx, mock.Anything).Return(nil, repository.ErrNotFound)
	index.On("Record", ctx, mock.Anything).Return(nil)

	svc := session.NewService(index, nil)
	sess, err := svc.Touch(ctx, session.TouchRequest{ProjectID: "proj-abcd1234", Title: "Chat"})
	require.NoError(t, err)
	require.NotEmpty(t, sess.ID)
	require.Equal(t, "proj-abcd1234", sess.ProjectID)
	require.Equal(t, sess.CreatedAt, sess.UpdatedAt)
}

func TestSessionService_TouchPreservesExisting(t *testing.T) {
	ctx := context.Background()

	existing := &session.Session{
		ID:        "s1",
		ProjectID: "proj-abcd1234",
		Title:     "Original",
		CreatedAt: 100,
		UpdatedAt: 100,
	}

	index := &mocks.SessionIndex{}
	index.On("Get", ctx, "s1").Return(existing, nil)
	index.On("Record", ctx, mock.Anything).Return(nil)

	svc := session.NewService(index, nil)
	sess, err := svc.Touch(ctx, session.TouchRequest{ID: "s1"})
	require.NoError(t, err)
	require.Equal(t, int64(100), sess.CreatedAt)
	require.Greater(t, sess.UpdatedAt, int64(100))
	require.Equal(t, "proj-abcd1234", sess.ProjectID)
	require.Equal(t, "Original", sess.Title)
}

func TestSessionService_GetTranslatesNotFound(t *testing.T) {
	ctx := context.Background()

	index := &mocks.SessionIndex{}
	index.On("Get", ctx, "nope").Return(nil, repository.ErrNotFound)

	svc := session.NewService(index, nil)
	_, err := svc.Get(ctx, "nope")
	require.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestSessionService_Forget(t *testing.T) {
	ctx := context.Background()

	index := &mocks.SessionIndex{}
	index.On("Delete", ctx, "s1").Return(nil)
	index.On("Delete", ctx, "nope").Return(repository.ErrNotFound)

	svc := session.NewService(index, nil)
	require.NoError(t, svc.Forget(ctx, "s1"))
	require.ErrorIs(t, svc.Forget(ctx, "nope"), session.ErrSessionNotFound)
}
