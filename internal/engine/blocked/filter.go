package blocked

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Converter интерфейс конвертера часовых поясов
type Converter interface {
	DayWindow(date types.Date, tz string) (time.Time, time.Time, error)
	StartOfDay(date types.Date, tz string) (time.Time, error)
}

// Filter блокировки диапазонов дат одного бизнеса
type Filter struct {
	ranges    []domain.BlockedDateRange
	converter Converter
}

// NewFilter создает фильтр по блокировкам бизнеса businessID. Записи других бизнесов игнорируются.
func NewFilter(businessID int64, ranges []domain.BlockedDateRange, converter Converter) *Filter {
	own := make([]domain.BlockedDateRange, 0, len(ranges))
	for _, r := range ranges {
		if r.BusinessID == businessID {
			own = append(own, r)
		}
	}
	return &Filter{ranges: own, converter: converter}
}

// IsBlocked возвращает true, если календарная дата (полные сутки в зоне tz)
// пересекается хотя бы с одной блокировкой
func (f *Filter) IsBlocked(date types.Date, tz string) (bool, error) {
	if len(f.ranges) == 0 {
		return false, nil
	}

	dayStart, dayEnd, err := f.converter.DayWindow(date, tz)
	if err != nil {
		return false, err
	}

	overlapping, err := f.Overlapping(dayStart, dayEnd, tz)
	if err != nil {
		return false, err
	}
	return len(overlapping) > 0, nil
}

// Overlapping возвращает блокировки, пересекающиеся с абсолютным окном [start, end).
// Даты блокировок на весь день интерпретируются в зоне tz.
func (f *Filter) Overlapping(start, end time.Time, tz string) ([]domain.BlockedDateRange, error) {
	var out []domain.BlockedDateRange
	for _, r := range f.ranges {
		rangeStart, rangeEnd, err := f.bounds(r, tz)
		if err != nil {
			return nil, err
		}
		// Простое пересечение диапазонов: (StartA < EndB) и (EndA > StartB)
		if rangeStart.Before(end) && rangeEnd.After(start) {
			out = append(out, r)
		}
	}
	return out, nil
}

// bounds возвращает абсолютные границы блокировки.
// Для блокировки на весь день конечная дата включается целиком: [начало StartDate, начало EndDate+1).
func (f *Filter) bounds(r domain.BlockedDateRange, tz string) (time.Time, time.Time, error) {
	if !r.IsAllDay {
		return r.StartDate, r.EndDate, nil
	}

	// Календарные даты хранятся как полночь UTC; зона сессии postgres не должна их сдвигать
	start, err := f.converter.StartOfDay(types.DateOf(r.StartDate.UTC()), tz)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := f.converter.StartOfDay(types.DateOf(r.EndDate.UTC()).AddDays(1), tz)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}
