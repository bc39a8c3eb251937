package domain

import "time"

// AuditOutcome результат операции в журнале аудита
type AuditOutcome string

const (
	AuditSuccess AuditOutcome = "success"
	AuditFailure AuditOutcome = "failure"
)

// AuditEntry запись журнала изменений, сделанных через админ-панель
type AuditEntry struct {
	ID           int64
	Username     string
	Family       FamilyName
	Operation    Operation
	RecordID     *string
	Outcome      AuditOutcome
	ErrorMessage *string
	CreatedAt    time.Time
}
