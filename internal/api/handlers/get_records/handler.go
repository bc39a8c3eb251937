package get_records

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AdminPanel/internal/api/handlers"
	"github.com/m04kA/SMC-AdminPanel/internal/api/middleware"
	"github.com/m04kA/SMC-AdminPanel/internal/domain"
)

const (
	msgUnauthorized = "требуется вход в систему"
	msgInvalidPage  = "некорректный номер страницы"
)

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// Handle GET /api/v1/families/{family}/records?page=n
// Загружает коллекцию при первом обращении; page переключает текущую страницу
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ws, ok := middleware.GetWorkspace(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	family := mux.Vars(r)["family"]
	page, err := handlers.QueryInt(r, "page", 0)
	if err != nil {
		h.logger.Warn("GET /families/%s/records - Invalid page: %v", family, err)
		handlers.RespondBadRequest(w, msgInvalidPage)
		return
	}

	ctrl, err := ws.Controller(domain.FamilyName(family))
	if err != nil {
		h.logger.Warn("GET /families/%s/records - Unknown family", family)
		handlers.RespondCrudError(w, err)
		return
	}

	if _, err := ctrl.EnsureLoaded(r.Context()); err != nil {
		status := handlers.RespondCrudError(w, err)
		h.logger.Error("GET /families/%s/records - Failed to load records: status=%d, error=%v", family, status, err)
		return
	}

	if page > 0 {
		if err := ctrl.SetPage(page); err != nil {
			h.logger.Warn("GET /families/%s/records - Page unavailable: page=%d, error=%v", family, page, err)
			handlers.RespondCrudError(w, err)
			return
		}
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromState(ctrl.Snapshot()))
}
