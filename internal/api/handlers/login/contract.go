package login

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AdminPanel/internal/service/session"
	"github.com/m04kA/SMC-AdminPanel/internal/usecase/workspace"
)

type WorkspaceRegistry interface {
	Open(sess *session.Session) (*workspace.Workspace, error)
}

type SessionManager interface {
	Start(w http.ResponseWriter, r *http.Request, workspaceID uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
