package close_draft

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

// Handle DELETE /api/v1/families/{family}/draft
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ws, ok := middleware.GetWorkspace(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	family := mux.Vars(r)["family"]
	ctrl, err := ws.Controller(domain.FamilyName(family))
	if err != nil {
		h.logger.Warn("DELETE /families/%s/draft - Unknown family", family)
		handlers.RespondCrudError(w, err)
		return
	}

	ctrl.CloseDraft()
	handlers.RespondNoContent(w)
}
