package logout

import (
	"net/http"

	"github.com/google/uuid"
)

type WorkspaceRegistry interface {
	Close(id uuid.UUID)
}

type SessionManager interface {
	End(w http.ResponseWriter, r *http.Request) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
