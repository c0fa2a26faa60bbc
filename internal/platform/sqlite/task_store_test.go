package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/phrazzld/tarefas/internal/domain"
	"github.com/phrazzld/tarefas/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*SQLiteTaskStore, context.Context) {
	t.Helper()

	ctx := context.Background()
	db, err := Open(ctx, filepath.Join(t.TempDir(), "todo.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	s := NewSQLiteTaskStore(db, nil)
	require.NoError(t, s.Init(ctx))
	return s, ctx
}

func createTask(t *testing.T, s *SQLiteTaskStore, ctx context.Context, description string) *domain.Task {
	t.Helper()

	task, err := domain.NewTask(description)
	require.NoError(t, err)
	require.NoError(t, s.Create(ctx, task))
	return task
}

func TestSQLiteTaskStore_InitIsIdempotent(t *testing.T) {
	s, ctx := newTestStore(t)

	createTask(t, s, ctx, "survives re-init")
	require.NoError(t, s.Init(ctx))

	tasks, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

func TestSQLiteTaskStore_CreateAssignsIncreasingIDs(t *testing.T) {
	s, ctx := newTestStore(t)

	first := createTask(t, s, ctx, "buy milk")
	second := createTask(t, s, ctx, "walk dog")

	assert.Equal(t, int64(1), first.ID)
	assert.Greater(t, second.ID, first.ID)
	assert.False(t, second.Completed)

	stored, err := s.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, &domain.Task{ID: 1, Description: "buy milk", Completed: false}, stored)
}

func TestSQLiteTaskStore_CreateRejectsEmptyDescription(t *testing.T) {
	s, ctx := newTestStore(t)

	err := s.Create(ctx, &domain.Task{Description: "   "})
	assert.ErrorIs(t, err, domain.ErrValidation)

	tasks, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestSQLiteTaskStore_ListNewestFirst(t *testing.T) {
	s, ctx := newTestStore(t)

	empty, err := s.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty, "empty list must not be nil")
	assert.Empty(t, empty)

	for _, d := range []string{"one", "two", "three"} {
		createTask(t, s, ctx, d)
	}

	tasks, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "three", tasks[0].Description)
	assert.Equal(t, "one", tasks[2].Description)
	for i := 1; i < len(tasks); i++ {
		assert.Greater(t, tasks[i-1].ID, tasks[i].ID)
	}
}

func TestSQLiteTaskStore_SetCompleted(t *testing.T) {
	s, ctx := newTestStore(t)
	task := createTask(t, s, ctx, "buy milk")

	require.NoError(t, s.SetCompleted(ctx, task.ID, true))
	stored, err := s.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, stored.Completed)

	require.NoError(t, s.SetCompleted(ctx, task.ID, false))
	stored, err = s.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.False(t, stored.Completed)

	err = s.SetCompleted(ctx, 999, true)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)
}

func TestSQLiteTaskStore_StoresCompletionAsInteger(t *testing.T) {
	s, ctx := newTestStore(t)
	task := createTask(t, s, ctx, "buy milk")
	require.NoError(t, s.SetCompleted(ctx, task.ID, true))

	var raw int
	err := s.db.QueryRowContext(ctx, `SELECT CAST(concluida AS INTEGER) FROM tarefas WHERE id = ?`, task.ID).Scan(&raw)
	require.NoError(t, err)
	assert.Equal(t, 1, raw)
}

func TestSQLiteTaskStore_Delete(t *testing.T) {
	s, ctx := newTestStore(t)
	keep := createTask(t, s, ctx, "keep")
	drop := createTask(t, s, ctx, "drop")

	require.NoError(t, s.Delete(ctx, drop.ID))

	_, err := s.GetByID(ctx, drop.ID)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)
	assert.ErrorIs(t, s.Delete(ctx, drop.ID), store.ErrTaskNotFound)

	tasks, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, keep.ID, tasks[0].ID)
}

func TestSQLiteTaskStore_WithTxRollback(t *testing.T) {
	s, ctx := newTestStore(t)
	db, ok := s.db.(*sql.DB)
	require.True(t, ok)

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)

	txStore := s.WithTx(tx)
	task, err := domain.NewTask("rolled back")
	require.NoError(t, err)
	require.NoError(t, txStore.Create(ctx, task))
	require.NoError(t, tx.Rollback())

	tasks, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestMapError(t *testing.T) {
	assert.NoError(t, MapError(nil))
	assert.ErrorIs(t, MapError(sql.ErrNoRows), store.ErrNotFound)

	s, ctx := newTestStore(t)
	_, err := s.db.ExecContext(ctx, `INSERT INTO tarefas (descricao, concluida) VALUES ('bad', 7)`)
	require.Error(t, err)
	assert.ErrorIs(t, MapError(err), store.ErrInvalidEntity)
}
