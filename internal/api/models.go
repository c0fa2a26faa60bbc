package api

import (
	"github.com/phrazzld/tarefas/internal/domain"
)

// CreateTaskRequest defines the payload for POST /tarefas.
type CreateTaskRequest struct {
	Descricao *string `json:"descricao"`
}

// Validate reports an absent or blank description.
func (r CreateTaskRequest) Validate() error {
	if r.Descricao == nil {
		return domain.NewValidationError("descricao", "is required", domain.ErrEmptyDescription)
	}
	return (&domain.Task{Description: *r.Descricao}).Validate()
}

// UpdateTaskRequest defines the payload for PUT /tarefas/{id}.
// Concluida is a pointer so an absent field can be told apart from false.
type UpdateTaskRequest struct {
	Concluida *bool `json:"concluida" validate:"required"`
}

// TaskResponse is the wire form of a task.
type TaskResponse struct {
	ID        int64  `json:"id"`
	Descricao string `json:"descricao"`
	Concluida bool   `json:"concluida"`
}

// MessageResponse carries a confirmation message.
type MessageResponse struct {
	Mensagem string `json:"mensagem"`
}

// taskToResponse converts a domain task to its wire form.
func taskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:        task.ID,
		Descricao: task.Description,
		Concluida: task.Completed,
	}
}

// tasksToResponse converts a list of tasks, always returning a non-nil slice
// so an empty list encodes as [].
func tasksToResponse(tasks []*domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, taskToResponse(task))
	}
	return out
}
