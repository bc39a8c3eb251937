package list_audit

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AdminPanel/internal/api/handlers"
	"github.com/m04kA/SMC-AdminPanel/internal/infra/storage/audit"
)

const (
	msgInvalidLimit  = "некорректный параметр limit"
	msgAuditDisabled = "журнал аудита отключен"
)

type Handler struct {
	repo   AuditRepository
	logger Logger
}

func NewHandler(repo AuditRepository, logger Logger) *Handler {
	return &Handler{
		repo:   repo,
		logger: logger,
	}
}

// Handle GET /api/v1/audit?limit=n
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	limit, err := handlers.QueryInt(r, "limit", audit.DefaultListLimit)
	if err != nil {
		h.logger.Warn("GET /audit - Invalid limit: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLimit)
		return
	}

	entries, err := h.repo.ListRecent(r.Context(), limit)
	if err != nil {
		if errors.Is(err, audit.ErrDisabled) {
			handlers.RespondNotFound(w, msgAuditDisabled)
			return
		}
		h.logger.Error("GET /audit - Failed to list audit entries: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(entries))
}
