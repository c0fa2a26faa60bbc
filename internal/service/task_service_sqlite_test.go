package service_test

import (
	"context"
	"testing"

	"github.com/phrazzld/tarefas/internal/platform/sqlite"
	"github.com/phrazzld/tarefas/internal/service"
	"github.com/phrazzld/tarefas/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSQLiteService wires the service to a real database file the way
// cmd/taskserver does.
func newSQLiteService(t *testing.T) service.TaskService {
	t.Helper()

	db := testdb.OpenSQLite(t)
	taskStore := sqlite.NewSQLiteTaskStore(db, nil)

	svc, err := service.NewTaskService(service.NewTaskRepositoryAdapter(taskStore, db), nil)
	require.NoError(t, err)
	return svc
}

func TestTaskService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	svc := newSQLiteService(t)

	first, err := svc.Create(ctx, "buy milk")
	require.NoError(t, err)
	second, err := svc.Create(ctx, "walk dog")
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)
	assert.False(t, first.Completed)

	tasks, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, second.ID, tasks[0].ID)

	updated, err := svc.SetCompleted(ctx, first.ID, true)
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	assert.Equal(t, "buy milk", updated.Description)

	got, err := svc.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.True(t, got.Completed)

	require.NoError(t, svc.Delete(ctx, first.ID))
	assert.ErrorIs(t, svc.Delete(ctx, first.ID), service.ErrTaskNotFound)

	_, err = svc.Get(ctx, first.ID)
	assert.ErrorIs(t, err, service.ErrTaskNotFound)
}

func TestTaskService_EmptyListIsNotNil(t *testing.T) {
	tasks, err := newSQLiteService(t).List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
}

func TestTaskService_SetCompletedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc := newSQLiteService(t)

	task, err := svc.Create(ctx, "water plants")
	require.NoError(t, err)

	for range 2 {
		updated, err := svc.SetCompleted(ctx, task.ID, true)
		require.NoError(t, err)
		assert.True(t, updated.Completed)
	}

	_, err = svc.SetCompleted(ctx, task.ID+100, true)
	assert.ErrorIs(t, err, service.ErrTaskNotFound)
}
