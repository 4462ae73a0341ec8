package timezone

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

const minutesPerDay = 24 * 60

// Converter переводит (дата, локальное время, зона) в абсолютный момент и обратно.
// Смещение зоны всегда вычисляется на конкретную дату, с учетом перехода на летнее время.
type Converter struct {
	registry *Registry
}

// NewConverter создает конвертер поверх реестра поддерживаемых зон
func NewConverter(registry *Registry) *Converter {
	return &Converter{registry: registry}
}

// Location возвращает локацию поддерживаемой зоны или ErrInvalidTimezone
func (c *Converter) Location(tz string) (*time.Location, error) {
	return c.registry.Location(tz)
}

// ToAbsolute возвращает момент, соответствующий локальному времени на дату в зоне tz.
// Время, пропущенное переходом на летнее время, дает ErrNonexistentLocalTime.
// Неоднозначное время (переход на зимнее) разрешается в первое наступление.
func (c *Converter) ToAbsolute(date types.Date, t types.TimeString, tz string) (time.Time, error) {
	loc, err := c.registry.Location(tz)
	if err != nil {
		return time.Time{}, err
	}
	if err := validateLocal(date, t); err != nil {
		return time.Time{}, err
	}

	if t.IsEndOfDay() {
		date, t = date.AddDays(1), "00:00"
	}

	instant := time.Date(date.Year, date.Month, date.Day, t.Hour(), t.Minute(), 0, 0, loc)

	// time.Date нормализует несуществующее время - проверяем, что стрелки не сдвинулись
	gotDate, gotTime := types.DateOf(instant), types.NewTimeString(instant)
	if gotDate != date || gotTime != t {
		return time.Time{}, fmt.Errorf("%w: %s %s in %s", ErrNonexistentLocalTime, date, t, tz)
	}

	return instant, nil
}

// Instant как ToAbsolute, но время внутри DST-разрыва сдвигается вперед на длину разрыва
// (02:30 в день перехода на летнее время дает 03:30), а не отклоняется.
// Используется для границ интервалов, где разрыв не должен ломать весь день.
func (c *Converter) Instant(date types.Date, t types.TimeString, tz string) (time.Time, error) {
	loc, err := c.registry.Location(tz)
	if err != nil {
		return time.Time{}, err
	}
	if err := validateLocal(date, t); err != nil {
		return time.Time{}, err
	}
	minutes := t.Minutes()
	instant := time.Date(date.Year, date.Month, date.Day, minutes/60, minutes%60, 0, 0, loc)

	// time.Date уводит время из разрыва назад по старому смещению - возвращаем его за разрыв
	gotDate, gotTime := types.DateOf(instant), types.NewTimeString(instant)
	shift := gotDate.DaysUntil(date)*minutesPerDay + minutes - gotTime.Minutes()
	if shift > 0 {
		instant = instant.Add(time.Duration(shift) * time.Minute)
	}

	return instant, nil
}

// StartOfDay возвращает первый момент календарной даты в зоне tz
func (c *Converter) StartOfDay(date types.Date, tz string) (time.Time, error) {
	return c.Instant(date, "00:00", tz)
}

// DayWindow возвращает полуоткрытый интервал [начало даты, начало следующей даты) в зоне tz.
// Длина окна может быть 23 или 25 часов в дни перехода.
func (c *Converter) DayWindow(date types.Date, tz string) (time.Time, time.Time, error) {
	start, err := c.StartOfDay(date, tz)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := c.StartOfDay(date.AddDays(1), tz)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// ToLocal возвращает календарную дату и время (с точностью до минуты) момента instant в зоне tz
func (c *Converter) ToLocal(instant time.Time, tz string) (types.Date, types.TimeString, error) {
	loc, err := c.registry.Location(tz)
	if err != nil {
		return types.Date{}, "", err
	}
	local := instant.In(loc)
	return types.DateOf(local), types.NewTimeString(local), nil
}

func validateLocal(date types.Date, t types.TimeString) error {
	if date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidLocalTime)
	}
	if types.NewDate(date.Year, date.Month, date.Day) != date {
		return fmt.Errorf("%w: %d-%02d-%02d", ErrInvalidLocalTime, date.Year, date.Month, date.Day)
	}
	if err := t.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLocalTime, err)
	}
	return nil
}
