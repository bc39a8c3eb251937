package open_draft

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AdminPanel/internal/api/handlers"
	"github.com/m04kA/SMC-AdminPanel/internal/api/middleware"
	"github.com/m04kA/SMC-AdminPanel/internal/domain"
	"github.com/m04kA/SMC-AdminPanel/internal/service/formsession"
)

const (
	msgUnauthorized       = "требуется вход в систему"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidMode        = "некорректный режим формы, ожидается create или edit"
)

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// Handle POST /api/v1/families/{family}/draft
// Открывает форму, заменяя уже открытую
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ws, ok := middleware.GetWorkspace(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	family := mux.Vars(r)["family"]

	var req OpenDraftRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /families/%s/draft - Invalid request body: %v", family, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	mode, err := req.ToMode()
	if err != nil {
		h.logger.Warn("POST /families/%s/draft - Invalid mode: %v", family, err)
		handlers.RespondBadRequest(w, msgInvalidMode)
		return
	}

	ctrl, err := ws.Controller(domain.FamilyName(family))
	if err != nil {
		h.logger.Warn("POST /families/%s/draft - Unknown family", family)
		handlers.RespondCrudError(w, err)
		return
	}

	// Для редактирования запись должна быть в загруженной коллекции
	if mode.Kind == formsession.ModeEdit {
		if _, err := ctrl.EnsureLoaded(r.Context()); err != nil {
			status := handlers.RespondCrudError(w, err)
			h.logger.Error("POST /families/%s/draft - Failed to load records: status=%d, error=%v", family, status, err)
			return
		}
	}

	var seed domain.Fields
	if mode.Kind == formsession.ModeCreate {
		seed = domain.Fields(req.Fields)
	}
	if err := ctrl.Reopen(mode, seed); err != nil {
		status := handlers.RespondCrudError(w, err)
		h.logger.Warn("POST /families/%s/draft - Failed to open draft: status=%d, error=%v", family, status, err)
		return
	}

	if mode.Kind == formsession.ModeEdit && len(req.Fields) > 0 {
		if err := ctrl.SetFields(domain.Fields(req.Fields)); err != nil {
			status := handlers.RespondCrudError(w, err)
			h.logger.Warn("POST /families/%s/draft - Failed to apply fields: status=%d, error=%v", family, status, err)
			return
		}
	}

	h.logger.Info("POST /families/%s/draft - Draft opened: mode=%s, id=%s", family, mode.Kind, mode.TargetID)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromState(ctrl.Snapshot()))
}
