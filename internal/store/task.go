package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/tarefas/internal/domain"
)

// TaskStore defines the interface for task data persistence.
type TaskStore interface {
	// Init creates the tasks table if it does not exist.
	// It is idempotent and is called once at startup.
	Init(ctx context.Context) error

	// List returns every task ordered by ID, newest first.
	// Returns an empty, non-nil slice when there are no tasks.
	List(ctx context.Context) ([]*domain.Task, error)

	// GetByID retrieves a task by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Task, error)

	// Create inserts task and sets task.ID to the storage-assigned value.
	// Returns validation errors from the domain Task if data is invalid.
	Create(ctx context.Context, task *domain.Task) error

	// SetCompleted stores the completion flag of an existing task.
	// Returns ErrTaskNotFound if the task does not exist.
	SetCompleted(ctx context.Context, id int64, completed bool) error

	// Delete removes a task.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a TaskStore bound to tx.
	// The transaction is created and managed by the caller (typically a service).
	WithTx(tx *sql.Tx) TaskStore
}
