package shop_timing

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-AdminPanel/internal/domain"
	"github.com/m04kA/SMC-AdminPanel/internal/service/formsession"
)

// UseCase недельное расписание салона поверх коллекции shop-timing
type UseCase struct {
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(logger Logger) *UseCase {
	return &UseCase{logger: logger}
}

// Week возвращает расписание на неделю (Monday..Sunday)
// Дни без записи на бэкенде получают значение по умолчанию 09:00-17:00
func (uc *UseCase) Week(ctx context.Context, req *WeekRequest) ([]DayTiming, error) {
	if req.Workspace == nil {
		return nil, fmt.Errorf("%w: workspace is required", ErrInvalidInput)
	}

	ctrl, err := req.Workspace.Controller(domain.FamilyShopTiming)
	if err != nil {
		return nil, fmt.Errorf("%w: shop-timing controller: %v", ErrInternal, err)
	}

	if req.Refresh {
		_, err = ctrl.Refresh(ctx)
	} else {
		_, err = ctrl.EnsureLoaded(ctx)
	}
	if err != nil {
		uc.logger.Error("ShopTiming.Week: failed to load timings: %v", err)
		return nil, err
	}

	return uc.merge(ctrl.Records()), nil
}

// SetDay меняет часы работы дня: PUT для сохраненного дня, POST для дня со значением по умолчанию
func (uc *UseCase) SetDay(ctx context.Context, req *SetDayRequest) (*DayTiming, error) {
	// 1. Валидация входных данных
	day, value, err := validateSetDay(req)
	if err != nil {
		uc.logger.Warn("ShopTiming.SetDay: validation failed: %v", err)
		return nil, err
	}

	ctrl, err := req.Workspace.Controller(domain.FamilyShopTiming)
	if err != nil {
		return nil, fmt.Errorf("%w: shop-timing controller: %v", ErrInternal, err)
	}

	// 2. Загружаем коллекцию, если она еще не загружена
	if _, err := ctrl.EnsureLoaded(ctx); err != nil {
		uc.logger.Error("ShopTiming.SetDay: failed to load timings: %v", err)
		return nil, err
	}

	// 3. Обновляем существующую запись дня или создаем новую
	var saved domain.Record
	if existing, ok := uc.findDay(ctrl.Records(), day); ok {
		saved, err = ctrl.Save(ctx, formsession.Edit(existing.ID), domain.Fields{"day": day, "time": value})
	} else {
		saved, err = ctrl.Save(ctx, formsession.Create(), domain.Fields{"day": day, "time": value})
	}
	if err != nil {
		uc.logger.Error("ShopTiming.SetDay: failed to save day=%s: %v", day, err)
		return nil, err
	}

	timing, err := domain.ShopTimingFromRecord(saved)
	if err != nil {
		return nil, fmt.Errorf("%w: decode saved timing: %v", ErrInternal, err)
	}

	uc.logger.Info("ShopTiming.SetDay: day=%s time=%s id=%s", day, value, saved.ID)
	result := toDayTiming(day, timing)
	return &result, nil
}

func (uc *UseCase) merge(records []domain.Record) []DayTiming {
	byDay := make(map[string]domain.ShopTiming, len(records))
	for _, rec := range records {
		timing, err := domain.ShopTimingFromRecord(rec)
		if err != nil {
			uc.logger.Warn("ShopTiming: skipping record id=%s: %v", rec.ID, err)
			continue
		}
		day, err := domain.NormalizeWeekday(timing.Day)
		if err != nil {
			uc.logger.Warn("ShopTiming: skipping record id=%s: %v", rec.ID, err)
			continue
		}
		if _, dup := byDay[day]; !dup {
			byDay[day] = timing
		}
	}

	week := make([]DayTiming, 0, len(domain.Weekdays))
	for _, day := range domain.Weekdays {
		timing, ok := byDay[day]
		if !ok {
			timing = domain.ShopTiming{Day: day, Time: domain.DefaultShopTime}
		}
		week = append(week, toDayTiming(day, timing))
	}
	return week
}

func (uc *UseCase) findDay(records []domain.Record, day string) (domain.Record, bool) {
	for _, rec := range records {
		if strings.EqualFold(strings.TrimSpace(rec.Fields.String("day")), day) {
			return rec, true
		}
	}
	return domain.Record{}, false
}

func toDayTiming(day string, timing domain.ShopTiming) DayTiming {
	open, closeAt := timing.Open(), timing.Close()
	if open == "" || closeAt == "" {
		open, closeAt, _ = domain.ParseTimeRange(domain.DefaultShopTime)
	}
	return DayTiming{
		Day:    day,
		Open:   open,
		Close:  closeAt,
		ID:     timing.ID,
		Stored: timing.IsStored(),
	}
}
