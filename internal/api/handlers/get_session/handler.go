package get_session

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

// Handle GET /api/v1/auth/session
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ws, ok := middleware.GetWorkspace(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	principal, err := ws.Session.Principal()
	if err != nil {
		h.logger.Warn("GET /auth/session - Session is not authenticated: workspace=%s", ws.ID)
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, SessionResponse{
		Username:  principal.Username,
		State:     string(ws.Session.State()),
		CreatedAt: ws.CreatedAt,
	})
}
