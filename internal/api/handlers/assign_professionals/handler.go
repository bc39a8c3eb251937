package assign_professionals

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AdminPanel/internal/api/handlers"
	"github.com/m04kA/SMC-AdminPanel/internal/api/middleware"
	assignProfessionals "github.com/m04kA/SMC-AdminPanel/internal/usecase/assign_professionals"
)

const (
	msgUnauthorized         = "требуется вход в систему"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgServiceNotFound      = "услуга не найдена"
	msgProfessionalNotFound = "мастер не найден"
)

type Handler struct {
	useCase AssignProfessionalsUseCase
	logger  Logger
}

func NewHandler(useCase AssignProfessionalsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/services/{id}/professionals
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ws, ok := middleware.GetWorkspace(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	serviceID := mux.Vars(r)["id"]

	var req AssignRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /services/%s/professionals - Invalid request body: %v", serviceID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &assignProfessionals.Request{
		Workspace:       ws,
		ServiceID:       serviceID,
		ProfessionalIDs: req.ProfessionalIDs,
	})
	if err != nil {
		switch {
		case errors.Is(err, assignProfessionals.ErrInvalidInput):
			h.logger.Warn("PUT /services/%s/professionals - Invalid input: %v", serviceID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, assignProfessionals.ErrServiceNotFound):
			h.logger.Warn("PUT /services/%s/professionals - Service not found", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, assignProfessionals.ErrProfessionalNotFound):
			h.logger.Warn("PUT /services/%s/professionals - Professional not found: %v", serviceID, err)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		default:
			status := handlers.RespondCrudError(w, err)
			h.logger.Error("PUT /services/%s/professionals - Failed to assign: status=%d, error=%v", serviceID, status, err)
		}
		return
	}

	h.logger.Info("PUT /services/%s/professionals - Assigned: count=%d, username=%s", serviceID, len(result.ProfessionalIDs), ws.Username())
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
