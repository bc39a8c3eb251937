package submit_draft

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AdminPanel/internal/api/handlers"
	"github.com/m04kA/SMC-AdminPanel/internal/api/middleware"
	"github.com/m04kA/SMC-AdminPanel/internal/domain"
	"github.com/m04kA/SMC-AdminPanel/internal/service/formsession"
)

const msgUnauthorized = "требуется вход в систему"

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// Handle POST /api/v1/families/{family}/draft/submit
// 201 для созданной записи, 200 для обновленной
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ws, ok := middleware.GetWorkspace(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	family := mux.Vars(r)["family"]
	ctrl, err := ws.Controller(domain.FamilyName(family))
	if err != nil {
		h.logger.Warn("POST /families/%s/draft/submit - Unknown family", family)
		handlers.RespondCrudError(w, err)
		return
	}

	status := http.StatusOK
	if before := ctrl.Snapshot(); before.Draft != nil && before.Draft.Mode.Kind == formsession.ModeCreate {
		status = http.StatusCreated
	}

	rec, err := ctrl.Submit(r.Context())
	if err != nil {
		code := handlers.RespondCrudError(w, err)
		h.logger.Warn("POST /families/%s/draft/submit - Submit failed: status=%d, error=%v", family, code, err)
		return
	}

	h.logger.Info("POST /families/%s/draft/submit - Saved: id=%s, username=%s", family, rec.ID, ws.Username())
	handlers.RespondJSON(w, status, SubmitResponse{
		Record: rec.ToMap(ctrl.Family().IDField),
		State:  handlers.FromState(ctrl.Snapshot()),
	})
}
