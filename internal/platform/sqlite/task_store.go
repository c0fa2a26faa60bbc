package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/tarefas/internal/domain"
	"github.com/phrazzld/tarefas/internal/platform/logger"
	"github.com/phrazzld/tarefas/internal/store"
)

const schema = `
CREATE TABLE IF NOT EXISTS tarefas (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	descricao TEXT NOT NULL,
	concluida BOOLEAN NOT NULL CHECK (concluida IN (0, 1))
)`

// SQLiteTaskStore implements the store.TaskStore interface
// using a SQLite database as the storage backend.
type SQLiteTaskStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewSQLiteTaskStore creates a new SQLite implementation of the TaskStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewSQLiteTaskStore(db store.DBTX, logger *slog.Logger) *SQLiteTaskStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &SQLiteTaskStore{
		db:     db,
		logger: logger.With(slog.String("component", "sqlite_task_store")),
	}
}

// Ensure SQLiteTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*SQLiteTaskStore)(nil)

// Init implements store.TaskStore.Init
func (s *SQLiteTaskStore) Init(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return store.NewStoreError("task", "init", "failed to create tarefas table", err)
	}
	logger.FromContextOrDefault(ctx, s.logger).Debug("tarefas table ready")
	return nil
}

// List implements store.TaskStore.List
func (s *SQLiteTaskStore) List(ctx context.Context) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `SELECT id, descricao, concluida FROM tarefas ORDER BY id DESC`)
	if err != nil {
		log.Error("failed to query tasks", slog.String("error", err.Error()))
		return nil, store.NewStoreError("task", "list", "query failed", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, store.NewStoreError("task", "list", "scan failed", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("task", "list", "row iteration failed", err)
	}

	return tasks, nil
}

// GetByID implements store.TaskStore.GetByID
func (s *SQLiteTaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, descricao, concluida FROM tarefas WHERE id = ?`, id)

	task, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrTaskNotFound
	}
	if err != nil {
		return nil, store.NewStoreError("task", "get", "scan failed", MapError(err))
	}
	return task, nil
}

// Create implements store.TaskStore.Create
func (s *SQLiteTaskStore) Create(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during create", slog.String("error", err.Error()))
		return err
	}

	result, err := s.db.ExecContext(ctx,
		`INSERT INTO tarefas (descricao, concluida) VALUES (?, ?)`,
		task.Description, boolToInt(false))
	if err != nil {
		log.Error("failed to insert task", slog.String("error", err.Error()))
		return store.NewStoreError("task", "create", "insert failed", MapError(err))
	}

	id, err := result.LastInsertId()
	if err != nil {
		return store.NewStoreError("task", "create", "failed to read assigned id", err)
	}

	task.ID = id
	task.Completed = false
	return nil
}

// SetCompleted implements store.TaskStore.SetCompleted
func (s *SQLiteTaskStore) SetCompleted(ctx context.Context, id int64, completed bool) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE tarefas SET concluida = ? WHERE id = ?`,
		boolToInt(completed), id)
	if err != nil {
		return store.NewStoreError("task", "update", "update failed", MapError(err))
	}
	return checkRowsAffected(result)
}

// Delete implements store.TaskStore.Delete
func (s *SQLiteTaskStore) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM tarefas WHERE id = ?`, id)
	if err != nil {
		return store.NewStoreError("task", "delete", "delete failed", MapError(err))
	}
	return checkRowsAffected(result)
}

// WithTx implements store.TaskStore.WithTx
func (s *SQLiteTaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	return &SQLiteTaskStore{
		db:     tx,
		logger: s.logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var (
		task      domain.Task
		concluida any
	)
	if err := row.Scan(&task.ID, &task.Description, &concluida); err != nil {
		return nil, err
	}

	completed, err := intToBool(concluida)
	if err != nil {
		return nil, err
	}
	task.Completed = completed
	return &task, nil
}

// intToBool decodes the concluida column. The driver may report a BOOLEAN
// column either as its stored integer or as a Go bool.
func intToBool(v any) (bool, error) {
	switch b := v.(type) {
	case int64:
		return b != 0, nil
	case bool:
		return b, nil
	default:
		return false, fmt.Errorf("%w: unexpected concluida value %T", store.ErrInvalidEntity, v)
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
