package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/phrazzld/tarefas/internal/domain"
	"github.com/phrazzld/tarefas/internal/platform/logger"
	"github.com/phrazzld/tarefas/internal/store"
)

// TaskRepository defines the repository interface for the service layer
type TaskRepository interface {
	// List returns all tasks, newest first
	List(ctx context.Context) ([]*domain.Task, error)

	// GetByID retrieves a task by its ID
	GetByID(ctx context.Context, id int64) (*domain.Task, error)

	// Create saves a new task and assigns its ID
	Create(ctx context.Context, task *domain.Task) error

	// SetCompleted stores the completion flag of a task
	SetCompleted(ctx context.Context, id int64, completed bool) error

	// Delete removes a task
	Delete(ctx context.Context, id int64) error

	// WithTx returns a new repository instance that uses the provided transaction
	WithTx(tx *sql.Tx) TaskRepository

	// DB returns the underlying database connection
	DB() *sql.DB
}

// TaskService provides the task use cases exposed by the HTTP API.
type TaskService interface {
	// List returns every task ordered by ID, newest first.
	List(ctx context.Context) ([]*domain.Task, error)

	// Get returns a single task or ErrTaskNotFound.
	Get(ctx context.Context, id int64) (*domain.Task, error)

	// Create stores a new incomplete task and returns the stored record.
	// Returns a domain validation error when description is empty.
	Create(ctx context.Context, description string) (*domain.Task, error)

	// SetCompleted updates the completion flag and returns the stored record.
	// Returns ErrTaskNotFound if the task does not exist.
	SetCompleted(ctx context.Context, id int64, completed bool) (*domain.Task, error)

	// Delete removes a task. Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id int64) error
}

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	taskRepo TaskRepository
	logger   *slog.Logger
}

// NewTaskService creates a new TaskService.
// It returns an error if any of the required dependencies are nil.
func NewTaskService(taskRepo TaskRepository, logger *slog.Logger) (TaskService, error) {
	if taskRepo == nil {
		return nil, domain.NewValidationError("taskRepo", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &taskServiceImpl{
		taskRepo: taskRepo,
		logger:   logger.With(slog.String("component", "task_service")),
	}, nil
}

// List implements TaskService.List
func (s *taskServiceImpl) List(ctx context.Context) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var tasks []*domain.Task
	err := store.RunInTransaction(ctx, s.taskRepo.DB(), func(ctx context.Context, tx *sql.Tx) error {
		var err error
		tasks, err = s.taskRepo.WithTx(tx).List(ctx)
		if err != nil {
			return NewTaskServiceError("list", "failed to list tasks", err)
		}
		return nil
	})
	if err != nil {
		log.Error("failed to list tasks", slog.String("error", err.Error()))
		return nil, err
	}

	log.Debug("listed tasks", slog.Int("count", len(tasks)))
	return tasks, nil
}

// Get implements TaskService.Get
func (s *taskServiceImpl) Get(ctx context.Context, id int64) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var task *domain.Task
	err := store.RunInTransaction(ctx, s.taskRepo.DB(), func(ctx context.Context, tx *sql.Tx) error {
		var err error
		task, err = s.taskRepo.WithTx(tx).GetByID(ctx, id)
		if err != nil {
			return NewTaskServiceError("get", "failed to retrieve task", err)
		}
		return nil
	})
	if err != nil {
		return nil, s.logOutcome(log, "get", id, err)
	}

	return task, nil
}

// Create implements TaskService.Create
func (s *taskServiceImpl) Create(ctx context.Context, description string) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := domain.NewTask(description)
	if err != nil {
		log.Debug("rejected invalid task", slog.String("error", err.Error()))
		return nil, err
	}

	var created *domain.Task
	err = store.RunInTransaction(ctx, s.taskRepo.DB(), func(ctx context.Context, tx *sql.Tx) error {
		txRepo := s.taskRepo.WithTx(tx)

		if err := txRepo.Create(ctx, task); err != nil {
			return NewTaskServiceError("create", "failed to save task", err)
		}

		var err error
		created, err = txRepo.GetByID(ctx, task.ID)
		if err != nil {
			return NewTaskServiceError("create", "failed to reload task", err)
		}
		return nil
	})
	if err != nil {
		log.Error("failed to create task", slog.String("error", err.Error()))
		return nil, err
	}

	log.Info("task created", slog.Int64("task_id", created.ID))
	return created, nil
}

// SetCompleted implements TaskService.SetCompleted
func (s *taskServiceImpl) SetCompleted(
	ctx context.Context,
	id int64,
	completed bool,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var updated *domain.Task
	err := store.RunInTransaction(ctx, s.taskRepo.DB(), func(ctx context.Context, tx *sql.Tx) error {
		txRepo := s.taskRepo.WithTx(tx)

		if err := txRepo.SetCompleted(ctx, id, completed); err != nil {
			return NewTaskServiceError("update", "failed to update task", err)
		}

		var err error
		updated, err = txRepo.GetByID(ctx, id)
		if err != nil {
			return NewTaskServiceError("update", "failed to reload task", err)
		}
		return nil
	})
	if err != nil {
		return nil, s.logOutcome(log, "update", id, err)
	}

	log.Info("task updated",
		slog.Int64("task_id", id),
		slog.Bool("completed", updated.Completed))
	return updated, nil
}

// Delete implements TaskService.Delete
func (s *taskServiceImpl) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := store.RunInTransaction(ctx, s.taskRepo.DB(), func(ctx context.Context, tx *sql.Tx) error {
		if err := s.taskRepo.WithTx(tx).Delete(ctx, id); err != nil {
			return NewTaskServiceError("delete", "failed to delete task", err)
		}
		return nil
	})
	if err != nil {
		return s.logOutcome(log, "delete", id, err)
	}

	log.Info("task deleted", slog.Int64("task_id", id))
	return nil
}

// logOutcome logs a failed operation. Missing tasks are an expected client
// condition and are logged at debug level only.
func (s *taskServiceImpl) logOutcome(log *slog.Logger, op string, id int64, err error) error {
	if errors.Is(err, ErrTaskNotFound) {
		log.Debug("task not found",
			slog.String("operation", op),
			slog.Int64("task_id", id))
		return err
	}
	log.Error("task operation failed",
		slog.String("operation", op),
		slog.Int64("task_id", id),
		slog.String("error", err.Error()))
	return err
}
