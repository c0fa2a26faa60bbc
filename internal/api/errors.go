package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/tarefas/internal/api/shared"
	"github.com/phrazzld/tarefas/internal/domain"
	"github.com/phrazzld/tarefas/internal/service"
	"github.com/phrazzld/tarefas/internal/store"
)

// Client-facing messages.
const (
	MsgDescriptionRequired = "Descrição da tarefa é obrigatória"
	MsgCompletedRequired   = `Status "concluida" é obrigatório`
	MsgTaskNotFound        = "Tarefa não encontrada"
	MsgInvalidFormat       = "Formato de requisição inválido"
	MsgTaskDeleted         = "Tarefa deletada com sucesso"
	MsgInvalidData         = "Dados da tarefa inválidos"
	MsgUnexpected          = "Erro interno do servidor"
	MsgMethodNotAllowed    = "Método não permitido"
)

// errInvalidFormat marks a body that could not be decoded.
var errInvalidFormat = errors.New("invalid request format")

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, service.ErrTaskNotFound),
		errors.Is(err, store.ErrNotFound),
		errors.Is(err, domain.ErrInvalidID):
		return http.StatusNotFound

	// Bad request errors
	case errors.Is(err, errInvalidFormat),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return MsgUnexpected
	}

	switch {
	case errors.Is(err, service.ErrTaskNotFound),
		errors.Is(err, store.ErrNotFound),
		errors.Is(err, domain.ErrInvalidID):
		return MsgTaskNotFound

	case errors.Is(err, errInvalidFormat):
		return MsgInvalidFormat

	case errors.Is(err, domain.ErrEmptyDescription):
		return MsgDescriptionRequired

	case errors.Is(err, domain.ErrMissingCompleted):
		return MsgCompletedRequired

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return MsgInvalidData

	default:
		return MsgUnexpected
	}
}

// HandleAPIError writes the error response for err. The status code and
// client message come from MapErrorToStatusCode and GetSafeErrorMessage; the
// full error is only logged.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
