package crud

import (
	"context"

	"github.com/m04kA/SMC-AdminPanel/internal/domain"
)

// Backend интерфейс REST бэкенда коллекций
type Backend interface {
	List(ctx context.Context, family domain.Family) ([]domain.Record, error)
	Create(ctx context.Context, family domain.Family, fields domain.Fields) (domain.Record, error)
	Update(ctx context.Context, family domain.Family, id string, fields domain.Fields) (domain.Record, error)
	Delete(ctx context.Context, family domain.Family, id string) error
}

// AuditRecorder интерфейс журнала аудита изменений
type AuditRecorder interface {
	Append(ctx context.Context, entry *domain.AuditEntry) error
}

// Resolver ищет запись другого семейства для полей-ссылок
// Для неизвестного id возвращает ошибку, оборачивающую ErrReferenceNotFound
type Resolver interface {
	Resolve(ctx context.Context, family domain.FamilyName, id string) (domain.Record, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type noopAudit struct{}

func (noopAudit) Append(context.Context, *domain.AuditEntry) error { return nil }
