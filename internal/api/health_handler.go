package api

import (
	"net/http"

	"github.com/phrazzld/tarefas/internal/api/shared"
)

// HealthHandler answers liveness checks.
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithText(w, r, http.StatusOK, "OK")
}
