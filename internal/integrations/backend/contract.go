package backend

import "time"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Observer получает длительность и исход каждого запроса к бэкенду (метрики)
type Observer interface {
	ObserveBackend(family, operation, outcome string, duration time.Duration)
}

type noopObserver struct{}

func (noopObserver) ObserveBackend(string, string, string, time.Duration) {}
