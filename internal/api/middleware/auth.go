package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AdminPanel/internal/api/handlers"
	"github.com/m04kA/SMC-AdminPanel/internal/usecase/workspace"
)

type contextKey string

const workspaceContextKey contextKey = "workspace"

const msgUnauthorized = "требуется вход в систему"

// WorkspaceRegistry реестр рабочих пространств
type WorkspaceRegistry interface {
	Get(id uuid.UUID) (*workspace.Workspace, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth пропускает только запросы с действующей сессией и кладет рабочее пространство в контекст
func Auth(sessions *SessionManager, registry WorkspaceRegistry, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := sessions.WorkspaceID(r)
			if err != nil {
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			ws, err := registry.Get(id)
			if err != nil {
				logger.Warn("Auth: workspace id=%s rejected: %v", id, err)
				_ = sessions.End(w, r)
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithWorkspace(r.Context(), ws)))
		})
	}
}

// WithWorkspace кладет рабочее пространство в контекст
func WithWorkspace(ctx context.Context, ws *workspace.Workspace) context.Context {
	return context.WithValue(ctx, workspaceContextKey, ws)
}

// GetWorkspace извлекает рабочее пространство из контекста
func GetWorkspace(ctx context.Context) (*workspace.Workspace, bool) {
	ws, ok := ctx.Value(workspaceContextKey).(*workspace.Workspace)
	return ws, ok && ws != nil
}
