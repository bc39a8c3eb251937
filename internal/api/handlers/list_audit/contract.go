package list_audit

import (
	"context"

	"github.com/m04kA/SMC-AdminPanel/internal/domain"
)

type AuditRepository interface {
	ListRecent(ctx context.Context, limit int) ([]domain.AuditEntry, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
