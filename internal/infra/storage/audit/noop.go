package audit

import (
	"context"

	"github.com/m04kA/SMC-AdminPanel/internal/domain"
)

// NoopRepository журнал, используемый при выключенной базе данных
type NoopRepository struct{}

func (NoopRepository) Append(context.Context, *domain.AuditEntry) error {
	return nil
}

func (NoopRepository) ListRecent(context.Context, int) ([]domain.AuditEntry, error) {
	return nil, ErrDisabled
}
