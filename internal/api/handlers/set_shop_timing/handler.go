package set_shop_timing

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AdminPanel/internal/api/handlers"
	"github.com/m04kA/SMC-AdminPanel/internal/api/middleware"
	shopTiming "github.com/m04kA/SMC-AdminPanel/internal/usecase/shop_timing"
)

const (
	msgUnauthorized       = "требуется вход в систему"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTiming      = "некорректный день недели или интервал, ожидается HH:MM и открытие раньше закрытия"
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

// Handle PUT /api/v1/shop-timings/{day}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ws, ok := middleware.GetWorkspace(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	day := mux.Vars(r)["day"]

	var req SetShopTimingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /shop-timings/%s - Invalid request body: %v", day, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.SetDay(r.Context(), &shopTiming.SetDayRequest{
		Workspace: ws,
		Day:       day,
		Open:      req.Open,
		Close:     req.Close,
	})
	if err != nil {
		if errors.Is(err, shopTiming.ErrInvalidInput) {
			h.logger.Warn("PUT /shop-timings/%s - Invalid timing: %v", day, err)
			handlers.RespondBadRequest(w, msgInvalidTiming)
			return
		}
		status := handlers.RespondCrudError(w, err)
		h.logger.Error("PUT /shop-timings/%s - Failed to save timing: status=%d, error=%v", day, status, err)
		return
	}

	h.logger.Info("PUT /shop-timings/%s - Saved: open=%s, close=%s, username=%s", result.Day, result.Open, result.Close, ws.Username())
	handlers.RespondJSON(w, http.StatusOK, result)
}
