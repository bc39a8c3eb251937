package logout

import (
	"net/http"

	"github.com/m04kA/SMC-AdminPanel/internal/api/handlers"
	"github.com/m04kA/SMC-AdminPanel/internal/api/middleware"
)

const msgUnauthorized = "требуется вход в систему"

type Handler struct {
	registry WorkspaceRegistry
	sessions SessionManager
	logger   Logger
}

func NewHandler(registry WorkspaceRegistry, sessions SessionManager, logger Logger) *Handler {
	return &Handler{
		registry: registry,
		sessions: sessions,
		logger:   logger,
	}
}

// Handle POST /api/v1/auth/logout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ws, ok := middleware.GetWorkspace(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	ws.Session.Logout()
	h.registry.Close(ws.ID)
	if err := h.sessions.End(w, r); err != nil {
		h.logger.Warn("POST /auth/logout - Failed to clear session cookie: %v", err)
	}

	h.logger.Info("POST /auth/logout - Logged out: username=%s", ws.Username())
	handlers.RespondNoContent(w)
}
