package inquiry_board

import (
	"github.com/m04kA/SMC-AdminPanel/internal/domain"
	"github.com/m04kA/SMC-AdminPanel/internal/usecase/crud"
)

// Workspace источник контроллеров семейств администратора
type Workspace interface {
	Controller(name domain.FamilyName) (*crud.Controller, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
