package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/tarefas/internal/domain"
	"github.com/phrazzld/tarefas/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*PostgresTaskStore, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})

	return NewPostgresTaskStore(db, nil), mock
}

func TestPostgresTaskStore_Init(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS tarefas")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, s.Init(context.Background()))
}

func TestPostgresTaskStore_List(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, descricao, concluida")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "descricao", "concluida"}).
			AddRow(int64(2), "walk dog", true).
			AddRow(int64(1), "buy milk", false))

	tasks, err := s.List(context.Background())

	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, &domain.Task{ID: 2, Description: "walk dog", Completed: true}, tasks[0])
	assert.Equal(t, &domain.Task{ID: 1, Description: "buy milk", Completed: false}, tasks[1])
}

func TestPostgresTaskStore_ListQueryError(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectQuery("SELECT").WillReturnError(errors.New("connection reset"))

	tasks, err := s.List(context.Background())

	assert.Nil(t, tasks)
	var storeErr *store.StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, "list", storeErr.Operation)
}

func TestPostgresTaskStore_GetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "descricao", "concluida"}).
				AddRow(int64(7), "read book", false))

		task, err := s.GetByID(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, int64(7), task.ID)
	})

	t.Run("not_found", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
			WithArgs(int64(8)).
			WillReturnError(sql.ErrNoRows)

		_, err := s.GetByID(context.Background(), 8)
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
	})
}

func TestPostgresTaskStore_Create(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO tarefas")).
		WithArgs("buy milk").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))

	task := &domain.Task{Description: "buy milk"}
	require.NoError(t, s.Create(context.Background(), task))

	assert.Equal(t, int64(42), task.ID)
	assert.False(t, task.Completed)
}

func TestPostgresTaskStore_CreateInvalidSkipsDatabase(t *testing.T) {
	s, _ := newMockStore(t)

	err := s.Create(context.Background(), &domain.Task{Description: ""})
	assert.ErrorIs(t, err, domain.ErrEmptyDescription)
}

func TestPostgresTaskStore_SetCompletedAndDelete(t *testing.T) {
	tests := []struct {
		name     string
		run      func(s *PostgresTaskStore) error
		query    string
		args     []any
		affected int64
		wantErr  error
	}{
		{
			name:     "set_completed_existing",
			run:      func(s *PostgresTaskStore) error { return s.SetCompleted(context.Background(), 1, true) },
			query:    "UPDATE tarefas",
			args:     []any{true, int64(1)},
			affected: 1,
		},
		{
			name:     "set_completed_missing",
			run:      func(s *PostgresTaskStore) error { return s.SetCompleted(context.Background(), 9, false) },
			query:    "UPDATE tarefas",
			args:     []any{false, int64(9)},
			affected: 0,
			wantErr:  store.ErrTaskNotFound,
		},
		{
			name:     "delete_existing",
			run:      func(s *PostgresTaskStore) error { return s.Delete(context.Background(), 1) },
			query:    "DELETE FROM tarefas",
			args:     []any{int64(1)},
			affected: 1,
		},
		{
			name:     "delete_missing",
			run:      func(s *PostgresTaskStore) error { return s.Delete(context.Background(), 3) },
			query:    "DELETE FROM tarefas",
			args:     []any{int64(3)},
			affected: 0,
			wantErr:  store.ErrTaskNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mock := newMockStore(t)
			args := make([]driver.Value, 0, len(tt.args))
			for _, a := range tt.args {
				args = append(args, a)
			}
			mock.ExpectExec(regexp.QuoteMeta(tt.query)).
				WithArgs(args...).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			err := tt.run(s)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{name: "nil", err: nil, wantErr: nil},
		{name: "no_rows", err: sql.ErrNoRows, wantErr: store.ErrNotFound},
		{name: "check_violation", err: &pgconn.PgError{Code: checkViolationCode, ConstraintName: "tarefas_descricao_check"}, wantErr: store.ErrInvalidEntity},
		{name: "not_null_violation", err: &pgconn.PgError{Code: notNullViolationCode, ColumnName: "descricao"}, wantErr: store.ErrInvalidEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.err)
			if tt.wantErr == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.wantErr)
		})
	}

	other := errors.New("boom")
	assert.Same(t, other, MapError(other))
}
