package get_shop_timings

import (
	"net/http"

	"github.com/m04kA/SMC-AdminPanel/internal/api/handlers"
	"github.com/m04kA/SMC-AdminPanel/internal/api/middleware"
	shopTiming "github.com/m04kA/SMC-AdminPanel/internal/usecase/shop_timing"
)

const (
	msgUnauthorized = "требуется вход в систему"
	msgInvalidQuery = "некорректный параметр refresh"
)

type Handler struct {
	useCase ShopTimingUseCase
	logger  Logger
}

func NewHandler(useCase ShopTimingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/shop-timings?refresh=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ws, ok := middleware.GetWorkspace(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	refresh, err := handlers.QueryBool(r, "refresh")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	week, err := h.useCase.Week(r.Context(), &shopTiming.WeekRequest{Workspace: ws, Refresh: refresh})
	if err != nil {
		status := handlers.RespondCrudError(w, err)
		h.logger.Error("GET /shop-timings - Failed to load timings: status=%d, error=%v", status, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, week)
}
