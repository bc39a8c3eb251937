package audit

import "github.com/m04kA/SMC-AdminPanel/pkg/dbmetrics"

// Переиспользуем интерфейс из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Observer приемник метрик записей журнала
type Observer interface {
	ObserveAuditWrite(outcome string)
}

type noopObserver struct{}

func (noopObserver) ObserveAuditWrite(string) {}
