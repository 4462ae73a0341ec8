package schedule

import "errors"

var (
	// ErrBusinessNotFound возвращается, когда бизнес не найден
	ErrBusinessNotFound = errors.New("business not found")

	// ErrInvalidSchedule возвращается, когда недельные записи бизнеса противоречивы
	ErrInvalidSchedule = errors.New("invalid weekly schedule")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
