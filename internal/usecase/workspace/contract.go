package workspace

import (
	"github.com/m04kA/SMC-AdminPanel/internal/usecase/crud"
)

// Backend REST бэкенд коллекций
type Backend = crud.Backend

// AuditRecorder журнал аудита изменений
type AuditRecorder = crud.AuditRecorder

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
