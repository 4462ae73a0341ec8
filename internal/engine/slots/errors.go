package slots

import "errors"

var (
	// ErrInvalidAppointmentType возвращается для неактивного типа записи или некорректных длительности и буферов
	ErrInvalidAppointmentType = errors.New("slots: invalid appointment type")
)
