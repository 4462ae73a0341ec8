package availability

import "errors"

var (
	// ErrInvalidSchedule возвращается, когда входные записи бизнеса нельзя использовать
	ErrInvalidSchedule = errors.New("availability: invalid business schedule")

	// ErrInvalidHorizon возвращается при недопустимой глубине поиска или длине календаря
	ErrInvalidHorizon = errors.New("availability: invalid horizon")
)
