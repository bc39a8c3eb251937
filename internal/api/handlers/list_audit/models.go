package list_audit

import (
	"time"

	"github.com/m04kA/SMC-AdminPanel/internal/domain"
)

// AuditEntryResponse запись журнала аудита
type AuditEntryResponse struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Family       string    `json:"family"`
	Operation    string    `json:"operation"`
	RecordID     *string   `json:"recordId,omitempty"`
	Outcome      string    `json:"outcome"`
	ErrorMessage *string   `json:"errorMessage,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// FromDomain конвертирует записи журнала
func FromDomain(entries []domain.AuditEntry) []AuditEntryResponse {
	out := make([]AuditEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, AuditEntryResponse{
			ID:           e.ID,
			Username:     e.Username,
			Family:       string(e.Family),
			Operation:    string(e.Operation),
			RecordID:     e.RecordID,
			Outcome:      string(e.Outcome),
			ErrorMessage: e.ErrorMessage,
			CreatedAt:    e.CreatedAt,
		})
	}
	return out
}
