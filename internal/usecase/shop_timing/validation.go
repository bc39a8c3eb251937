package shop_timing

import (
	"fmt"

	"github.com/m04kA/SMC-AdminPanel/internal/domain"
)

// validateSetDay проверяет день недели и интервал, возвращает канонический день и интервал "HH:MM-HH:MM"
func validateSetDay(req *SetDayRequest) (string, string, error) {
	if req.Workspace == nil {
		return "", "", fmt.Errorf("%w: workspace is required", ErrInvalidInput)
	}

	day, err := domain.NormalizeWeekday(req.Day)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	value, err := domain.FormatTimeRange(req.Open, req.Close)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return day, value, nil
}
