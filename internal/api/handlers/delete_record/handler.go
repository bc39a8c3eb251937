package delete_record

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AdminPanel/internal/api/handlers"
	"github.com/m04kA/SMC-AdminPanel/internal/api/middleware"
	"github.com/m04kA/SMC-AdminPanel/internal/domain"
)

const msgUnauthorized = "требуется вход в систему"

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// Handle DELETE /api/v1/families/{family}/records/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ws, ok := middleware.GetWorkspace(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	vars := mux.Vars(r)
	family, id := vars["family"], vars["id"]

	ctrl, err := ws.Controller(domain.FamilyName(family))
	if err != nil {
		h.logger.Warn("DELETE /families/%s/records/%s - Unknown family", family, id)
		handlers.RespondCrudError(w, err)
		return
	}

	if err := ctrl.DeleteRecord(r.Context(), id); err != nil {
		status := handlers.RespondCrudError(w, err)
		h.logger.Warn("DELETE /families/%s/records/%s - Failed to delete: status=%d, error=%v", family, id, status, err)
		return
	}

	h.logger.Info("DELETE /families/%s/records/%s - Deleted: username=%s", family, id, ws.Username())
	handlers.RespondJSON(w, http.StatusOK, handlers.FromState(ctrl.Snapshot()))
}
