package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
)

// Форматы времени
const (
	TimeFormat      = "15:04"      // HH:MM
	DateFormat      = "2006-01-02" // YYYY-MM-DD
	DefaultShopTime = "09:00-17:00"
)

var (
	// ErrInvalidTimeRange возвращается при некорректном интервале работы "HH:MM-HH:MM"
	ErrInvalidTimeRange = errors.New("domain: invalid time range")

	// ErrUnknownWeekday возвращается для неизвестного дня недели
	ErrUnknownWeekday = errors.New("domain: unknown weekday")
)

// Weekdays дни недели в порядке отображения расписания
var Weekdays = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// ShopTiming часы работы салона в один день недели
type ShopTiming struct {
	ID   string `mapstructure:"-"`
	Day  string `mapstructure:"day"`
	Time string `mapstructure:"time"`
}

// Open время открытия
func (t ShopTiming) Open() string {
	open, _, _ := ParseTimeRange(t.Time)
	return open
}

// Close время закрытия
func (t ShopTiming) Close() string {
	_, closeAt, _ := ParseTimeRange(t.Time)
	return closeAt
}

// IsStored true, если расписание дня уже сохранено на бэкенде
func (t ShopTiming) IsStored() bool {
	return t.ID != ""
}

// ShopTimingFromRecord строит типизированное представление записи расписания
func ShopTimingFromRecord(rec Record) (ShopTiming, error) {
	var timing ShopTiming
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &timing,
	})
	if err != nil {
		return ShopTiming{}, err
	}
	if err := decoder.Decode(map[string]interface{}(rec.Fields)); err != nil {
		return ShopTiming{}, fmt.Errorf("decode shop timing %s: %w", rec.ID, err)
	}
	timing.ID = rec.ID
	return timing, nil
}

// NormalizeWeekday приводит название дня к каноническому виду ("monday" -> "Monday")
func NormalizeWeekday(day string) (string, error) {
	for _, d := range Weekdays {
		if strings.EqualFold(d, strings.TrimSpace(day)) {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownWeekday, day)
}

// ParseTimeRange разбирает интервал "HH:MM-HH:MM"
func ParseTimeRange(value string) (string, string, error) {
	parts := strings.Split(value, "-")
	if len(parts) != 2 {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidTimeRange, value)
	}
	open, closeAt := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	if err := validateTimeRange(open, closeAt); err != nil {
		return "", "", err
	}
	return open, closeAt, nil
}

// FormatTimeRange собирает интервал "HH:MM-HH:MM" с проверкой, что открытие раньше закрытия
func FormatTimeRange(open, closeAt string) (string, error) {
	if err := validateTimeRange(open, closeAt); err != nil {
		return "", err
	}
	return open + "-" + closeAt, nil
}

func validateTimeRange(open, closeAt string) error {
	openAt, err := time.Parse(TimeFormat, open)
	if err != nil {
		return fmt.Errorf("%w: open %q", ErrInvalidTimeRange, open)
	}
	closeTime, err := time.Parse(TimeFormat, closeAt)
	if err != nil {
		return fmt.Errorf("%w: close %q", ErrInvalidTimeRange, closeAt)
	}
	if !openAt.Before(closeTime) {
		return fmt.Errorf("%w: %s must be before %s", ErrInvalidTimeRange, open, closeAt)
	}
	return nil
}
