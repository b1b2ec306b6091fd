package project_test

import (
	"context"
	"errors"
	"testing"

	"github.com/parleyhq/parley/internal/domain/project"
	"github.com/parleyhq/parley/internal/repository"
	"github.com/parleyhq/parley/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestService_CreatePropagatesErrors(t *testing.T) {
	ctx := context.Background()

	store := &mocks.ProjectStore{}
	store.On("CreateProject", ctx, mock.Anything).Return(nil, errors.New("disk full"))

	svc := project.NewService(store, nil, nil)
	_, err := svc.Create(ctx, project.CreateRequest{Name: "X"})
	require.ErrorContains(t, err, "disk full")
}

func TestService_LoadCollapsesToNil(t *testing.T) {
	ctx := context.Background()

	store := &mocks.ProjectStore{}
	store.On("LoadConfig", ctx, "missing").Return(nil, repository.ErrNotFound)
	store.On("LoadConfig", ctx, "broken").Return(nil, errors.New("permission denied"))

	svc := project.NewService(store, nil, nil)
	require.Nil(t, svc.Load(ctx, "missing"))
	require.Nil(t, svc.Load(ctx, "broken"))
}

func TestService_UpdateMissingIsNilNil(t *testing.T) {
	ctx := context.Background()

	store := &mocks.ProjectStore{}
	store.On("UpdateProject", ctx, "missing", mock.Anything).Return(nil, repository.ErrNotFound)

	svc := project.NewService(store, nil, nil)
	name := "x"
	cfg, err := svc.Update(ctx, "missing", project.UpdateRequest{Name: &name})
	require.NoError(t, err)
	require.Nil(t, cfg)
}

func TestService_DeleteReportsBool(t *testing.T) {
	ctx := context.Background()

	store := &mocks.ProjectStore{}
	store.On("DeleteProject", ctx, "there").Return(nil)
	store.On("DeleteProject", ctx, "missing").Return(repository.ErrNotFound)

	svc := project.NewService(store, nil, nil)
	require.True(t, svc.Delete(ctx, "there"))
	require.False(t, svc.Delete(ctx, "missing"))
}

func TestService_ListFillsSessionCounts(t *testing.T) {
	ctx := context.Background()

	store := &mocks.ProjectStore{}
	store.On("ListProjects", ctx).Return([]project.Summary{
		{ID: "proj-aaaaaaaa", Slug: "a"},
		{ID: "proj-bbbbbbbb", Slug: "b"},
	}, nil)

	sessions := &mocks.SessionIndex{}
	sessions.On("CountByProject", ctx, "proj-aaaaaaaa").Return(3, nil)
	sessions.On("CountByProject", ctx, "proj-bbbbbbbb").Return(0, nil)

	svc := project.NewService(store, sessions, nil)
	list := svc.List(ctx)
	require.Len(t, list, 2)
	require.Equal(t, 3, list[0].SessionCount)
	require.Equal(t, 0, list[1].SessionCount)
}

func TestService_ListCollapsesToEmpty(t *testing.T) {
	ctx := context.Background()

	store := &mocks.ProjectStore{}
	store.On("ListProjects", ctx).Return(nil, errors.New("io error"))

	svc := project.NewService(store, nil, nil)
	require.Empty(t, svc.List(ctx))
}

func TestService_GetSummaryNilSessionCounter(t *testing.T) {
	ctx := context.Background()

	store := &mocks.ProjectStore{}
	store.On("GetSummary", ctx, "demo").Return(&project.Summary{ID: "proj-abcd1234", Slug: "demo"}, nil)

	svc := project.NewService(store, nil, nil)
	summary := svc.GetSummary(ctx, "demo")
	require.NotNil(t, summary)
	require.Zero(t, summary.SessionCount)
}

func TestService_FileQueriesCollapse(t *testing.T) {
	ctx := context.Background()

	store := &mocks.ProjectStore{}
	store.On("ListFiles", ctx, "demo", "missing").Return(nil, repository.ErrNotFound)
	store.On("ReadFile", ctx, "demo", "bad").Return("", repository.ErrInvalidPath)

	svc := project.NewService(store, nil, nil)
	require.Empty(t, svc.ListFiles(ctx, "demo", "missing"))

	content, ok := svc.ReadFile(ctx, "demo", "bad")
	require.False(t, ok)
	require.Empty(t, content)
}

func TestService_FileMutations(t *testing.T) {
	ctx := context.Background()

	store := &mocks.ProjectStore{}
	store.On("WriteFile", ctx, "demo", "a.txt", "x").Return(errors.New("disk full"))
	store.On("CreateFile", ctx, "demo", "dup.txt", "x").Return(repository.ErrExists)
	store.On("DeleteFile", ctx, "demo", "gone.txt").Return(repository.ErrNotFound)
	store.On("RenameFile", ctx, "demo", "a.txt", "b.txt").Return(repository.ErrExists)

	svc := project.NewService(store, nil, nil)

	// Writes propagate real failures; the boolean mutations collapse.
	require.ErrorContains(t, svc.WriteFile(ctx, "demo", "a.txt", "x"), "disk full")
	require.False(t, svc.CreateFile(ctx, "demo", "dup.txt", "x"))
	require.False(t, svc.DeleteFile(ctx, "demo", "gone.txt"))
	require.False(t, svc.RenameFile(ctx, "demo", "a.txt", "b.txt"))
}
