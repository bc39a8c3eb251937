package audit

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/m04kA/SMC-AdminPanel/internal/domain"
	"github.com/m04kA/SMC-AdminPanel/pkg/dbmetrics"
	"github.com/m04kA/SMC-AdminPanel/pkg/psqlbuilder"
)

const (
	tableName = "admin_audit_log"

	// DefaultListLimit количество записей журнала по умолчанию
	DefaultListLimit = 50
	// MaxListLimit верхняя граница количества записей за один запрос
	MaxListLimit = 500
)

// Repository журнал аудита в PostgreSQL
type Repository struct {
	db       DBExecutor
	observer Observer
}

// NewRepository создает новый экземпляр репозитория журнала аудита
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db, observer: noopObserver{}}
}

// WithObserver подключает учет записей в метриках
func (r *Repository) WithObserver(observer Observer) *Repository {
	if observer != nil {
		r.observer = observer
	}
	return r
}

// Append добавляет запись в журнал, заполняя ID и CreatedAt
func (r *Repository) Append(ctx context.Context, entry *domain.AuditEntry) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(
			"username",
			"family",
			"operation",
			"record_id",
			"outcome",
			"error_message",
		).
		Values(
			entry.Username,
			string(entry.Family),
			string(entry.Operation),
			entry.RecordID,
			string(entry.Outcome),
			entry.ErrorMessage,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		r.observer.ObserveAuditWrite("error")
		return fmt.Errorf("%w: Append - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		r.observer.ObserveAuditWrite("error")
		return fmt.Errorf("%w: Append - execute insert: %v", ErrExecQuery, err)
	}

	r.observer.ObserveAuditWrite("ok")
	return nil
}

// ListRecent возвращает последние записи журнала, новые первыми
// limit <= 0 заменяется на DefaultListLimit, limit > MaxListLimit обрезается
func (r *Repository) ListRecent(ctx context.Context, limit int) ([]domain.AuditEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	query, args, err := psqlbuilder.Select(
		"id",
		"username",
		"family",
		"operation",
		"record_id",
		"outcome",
		"error_message",
		"created_at",
	).
		From(tableName).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListRecent - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRecent - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]domain.AuditEntry, 0, limit)
	for rows.Next() {
		var (
			entry                      domain.AuditEntry
			family, operation, outcome string
			recordID, errorMessage     sql.NullString
		)
		if err := rows.Scan(
			&entry.ID,
			&entry.Username,
			&family,
			&operation,
			&recordID,
			&outcome,
			&errorMessage,
			&entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: ListRecent - scan row: %v", ErrScanRow, err)
		}

		entry.Family = domain.FamilyName(family)
		entry.Operation = domain.Operation(operation)
		entry.Outcome = domain.AuditOutcome(outcome)
		if recordID.Valid {
			entry.RecordID = &recordID.String
		}
		if errorMessage.Valid {
			entry.ErrorMessage = &errorMessage.String
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListRecent - iterate rows: %v", ErrScanRow, err)
	}

	return entries, nil
}
