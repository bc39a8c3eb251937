package list_families

import (
	"net/http"

	"github.com/m04kA/SMC-AdminPanel/internal/api/handlers"
	"github.com/m04kA/SMC-AdminPanel/internal/api/middleware"
)

const msgUnauthorized = "требуется вход в систему"

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// Handle GET /api/v1/families
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ws, ok := middleware.GetWorkspace(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	families := ws.Families()
	response := make([]handlers.FamilyResponse, 0, len(families))
	for _, f := range families {
		response = append(response, handlers.FromFamily(f))
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}
