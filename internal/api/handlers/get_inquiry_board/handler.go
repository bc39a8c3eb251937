package get_inquiry_board

import (
	"net/http"

	"github.com/m04kA/SMC-AdminPanel/internal/api/handlers"
	"github.com/m04kA/SMC-AdminPanel/internal/api/middleware"
	inquiryBoard "github.com/m04kA/SMC-AdminPanel/internal/usecase/inquiry_board"
)

const (
	msgUnauthorized = "требуется вход в систему"
	msgInvalidPage  = "некорректный номер страницы"
)

type Handler struct {
	useCase InquiryBoardUseCase
	logger  Logger
}

func NewHandler(useCase InquiryBoardUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/inquiries/board?page=n
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ws, ok := middleware.GetWorkspace(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	page, err := handlers.QueryInt(r, "page", 0)
	if err != nil {
		h.logger.Warn("GET /inquiries/board - Invalid page: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPage)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &inquiryBoard.Request{Workspace: ws, Page: page})
	if err != nil {
		status := handlers.RespondCrudError(w, err)
		h.logger.Error("GET /inquiries/board - Failed to load board: status=%d, error=%v", status, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
