package liststore

import (
	"context"

	"github.com/m04kA/SMC-AdminPanel/internal/domain"
)

// Loader источник полного снимка коллекции
type Loader interface {
	List(ctx context.Context) ([]domain.Record, error)
}

// LoaderFunc адаптер функции к Loader
type LoaderFunc func(ctx context.Context) ([]domain.Record, error)

func (f LoaderFunc) List(ctx context.Context) ([]domain.Record, error) {
	return f(ctx)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
