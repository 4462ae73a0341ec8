package timezone

import "errors"

var (
	// ErrInvalidTimezone возвращается для пустого, неизвестного или неподдерживаемого идентификатора
	ErrInvalidTimezone = errors.New("timezone: invalid timezone")

	// ErrNonexistentLocalTime возвращается, когда локальное время пропущено переходом на летнее время
	ErrNonexistentLocalTime = errors.New("timezone: local time does not exist in this timezone")

	// ErrInvalidLocalTime возвращается при некорректной дате или времени
	ErrInvalidLocalTime = errors.New("timezone: invalid local date or time")
)
