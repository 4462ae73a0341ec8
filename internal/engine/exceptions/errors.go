package exceptions

import "errors"

var (
	// ErrMalformedExceptionPayload возвращается парсером customSchedule.
	// Оверлей не пробрасывает ее наружу: исключение просто не срабатывает.
	ErrMalformedExceptionPayload = errors.New("exceptions: malformed exception payload")

	// ErrUnknownExceptionType возвращается для типа исключения вне известного набора
	ErrUnknownExceptionType = errors.New("exceptions: unknown exception type")
)
