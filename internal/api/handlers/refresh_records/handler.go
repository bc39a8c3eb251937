package refresh_records

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

// Handle POST /api/v1/families/{family}/records/refresh
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ws, ok := middleware.GetWorkspace(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	family := mux.Vars(r)["family"]
	ctrl, err := ws.Controller(domain.FamilyName(family))
	if err != nil {
		h.logger.Warn("POST /families/%s/records/refresh - Unknown family", family)
		handlers.RespondCrudError(w, err)
		return
	}

	st, err := ctrl.Refresh(r.Context())
	if err != nil {
		status := handlers.RespondCrudError(w, err)
		h.logger.Error("POST /families/%s/records/refresh - Failed to refresh: status=%d, error=%v", family, status, err)
		return
	}

	h.logger.Info("POST /families/%s/records/refresh - Refreshed: total=%d", family, st.Window.Total)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromState(st))
}
