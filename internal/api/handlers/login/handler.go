package login

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AdminPanel/internal/api/handlers"
	"github.com/m04kA/SMC-AdminPanel/internal/service/session"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCredentials = "неверный логин или пароль"
	msgAuthUnavailable    = "сервис авторизации недоступен"
)

type Handler struct {
	auth     session.Authenticator
	registry WorkspaceRegistry
	sessions SessionManager
	logger   Logger
}

func NewHandler(auth session.Authenticator, registry WorkspaceRegistry, sessions SessionManager, logger Logger) *Handler {
	return &Handler{
		auth:     auth,
		registry: registry,
		sessions: sessions,
		logger:   logger,
	}
}

// Handle POST /api/v1/auth/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	sess := session.New(h.auth, h.logger)
	principal, err := sess.Login(r.Context(), session.Credentials{Username: req.Username, Password: req.Password})
	if err != nil {
		switch {
		case errors.Is(err, session.ErrInvalidCredentials):
			h.logger.Warn("POST /auth/login - Invalid credentials: username=%s", req.Username)
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		case errors.Is(err, session.ErrAuthUnavailable):
			h.logger.Error("POST /auth/login - Authenticator unavailable: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgAuthUnavailable)

		default:
			h.logger.Error("POST /auth/login - Failed to login: username=%s, error=%v", req.Username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// сессия живет в рабочем пространстве до Logout
	ws, err := h.registry.Open(sess)
	if err != nil {
		h.logger.Error("POST /auth/login - Failed to open workspace: username=%s, error=%v", principal.Username, err)
		handlers.RespondInternalError(w)
		return
	}

	if err := h.sessions.Start(w, r, ws.ID); err != nil {
		h.logger.Error("POST /auth/login - Failed to start session: username=%s, error=%v", principal.Username, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /auth/login - Logged in: username=%s, workspace=%s", principal.Username, ws.ID)
	handlers.RespondJSON(w, http.StatusOK, LoginResponse{
		Username: principal.Username,
		State:    string(sess.State()),
	})
}
