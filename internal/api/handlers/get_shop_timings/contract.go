package get_shop_timings

import (
	"context"

	shopTiming "github.com/m04kA/SMC-AdminPanel/internal/usecase/shop_timing"
)

type ShopTimingUseCase interface {
	Week(ctx context.Context, req *shopTiming.WeekRequest) ([]shopTiming.DayTiming, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
