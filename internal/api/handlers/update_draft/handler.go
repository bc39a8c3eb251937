package update_draft

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AdminPanel/internal/api/handlers"
	"github.com/m04kA/SMC-AdminPanel/internal/api/middleware"
	"github.com/m04kA/SMC-AdminPanel/internal/domain"
)

const (
	msgUnauthorized       = "требуется вход в систему"
	msgInvalidRequestBody = "некорректное тело запроса"
)

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// Handle PATCH /api/v1/families/{family}/draft
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ws, ok := middleware.GetWorkspace(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	family := mux.Vars(r)["family"]

	var req UpdateDraftRequest
	if err := handlers.DecodeJSON(r, &req); err != nil || req.Fields == nil {
		h.logger.Warn("PATCH /families/%s/draft - Invalid request body: %v", family, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	ctrl, err := ws.Controller(domain.FamilyName(family))
	if err != nil {
		h.logger.Warn("PATCH /families/%s/draft - Unknown family", family)
		handlers.RespondCrudError(w, err)
		return
	}

	if err := ctrl.SetFields(domain.Fields(req.Fields)); err != nil {
		status := handlers.RespondCrudError(w, err)
		h.logger.Warn("PATCH /families/%s/draft - Failed to update draft: status=%d, error=%v", family, status, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromState(ctrl.Snapshot()))
}
