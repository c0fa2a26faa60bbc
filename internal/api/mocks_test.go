package api

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/phrazzld/tarefas/internal/domain"
	"github.com/phrazzld/tarefas/internal/service"
)

// mockTaskService implements service.TaskService with overridable functions.
type mockTaskService struct {
	ListFn         func(ctx context.Context) ([]*domain.Task, error)
	GetFn          func(ctx context.Context, id int64) (*domain.Task, error)
	CreateFn       func(ctx context.Context, description string) (*domain.Task, error)
	SetCompletedFn func(ctx context.Context, id int64, completed bool) (*domain.Task, error)
	DeleteFn       func(ctx context.Context, id int64) error

	mu    sync.Mutex
	calls []string
}

var _ service.TaskService = (*mockTaskService)(nil)

func (m *mockTaskService) record(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, name)
}

func (m *mockTaskService) List(ctx context.Context) ([]*domain.Task, error) {
	m.record("List")
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return []*domain.Task{}, nil
}

func (m *mockTaskService) Get(ctx context.Context, id int64) (*domain.Task, error) {
	m.record("Get")
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	return nil, service.ErrTaskNotFound
}

func (m *mockTaskService) Create(ctx context.Context, description string) (*domain.Task, error) {
	m.record("Create")
	if m.CreateFn != nil {
		return m.CreateFn(ctx, description)
	}
	return &domain.Task{ID: 1, Description: description}, nil
}

func (m *mockTaskService) SetCompleted(
	ctx context.Context,
	id int64,
	completed bool,
) (*domain.Task, error) {
	m.record("SetCompleted")
	if m.SetCompletedFn != nil {
		return m.SetCompletedFn(ctx, id, completed)
	}
	return nil, service.ErrTaskNotFound
}

func (m *mockTaskService) Delete(ctx context.Context, id int64) error {
	m.record("Delete")
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func (m *mockTaskService) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// fakeLoop counts EnsureRunning calls and reports a start only once.
type fakeLoop struct {
	calls   atomic.Int32
	started atomic.Bool
}

func (f *fakeLoop) EnsureRunning(context.Context) bool {
	f.calls.Add(1)
	return f.started.CompareAndSwap(false, true)
}
