package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/tarefas/internal/domain"
)

// getPathID extracts a positive integer ID from the URL path parameters.
// Anything else is reported as domain.ErrInvalidID, which callers answer
// with 404 since no task can have such an ID.
func getPathID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, domain.NewValidationError(paramName, "is required", domain.ErrInvalidID)
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil {
		return 0, domain.NewValidationError(paramName, "has invalid format", domain.ErrInvalidID)
	}

	if err := domain.ValidateID(id); err != nil {
		return 0, err
	}

	return id, nil
}
