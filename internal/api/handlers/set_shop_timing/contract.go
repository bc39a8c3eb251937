package set_shop_timing

import (
	"context"

	shopTiming "github.com/m04kA/SMC-AdminPanel/internal/usecase/shop_timing"
)

type ShopTimingUseCase interface {
	SetDay(ctx context.Context, req *shopTiming.SetDayRequest) (*shopTiming.DayTiming, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
