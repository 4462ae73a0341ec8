package get_available_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidTimezone возвращается, когда часовой пояс не поддерживается
	ErrInvalidTimezone = errors.New("invalid timezone")

	// ErrBusinessNotFound возвращается, когда бизнес не найден
	ErrBusinessNotFound = errors.New("business not found")

	// ErrAppointmentTypeNotFound возвращается, когда тип записи не найден у бизнеса
	ErrAppointmentTypeNotFound = errors.New("appointment type not found")

	// ErrInvalidAppointmentType возвращается для неактивного типа записи или некорректных длительности и буферов
	ErrInvalidAppointmentType = errors.New("invalid appointment type")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
