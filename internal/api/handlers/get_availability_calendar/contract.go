package get_availability_calendar

import (
	"context"

	getAvailabilityCalendar "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_availability_calendar"
)

type GetAvailabilityCalendarUseCase interface {
	Execute(ctx context.Context, req *getAvailabilityCalendar.Request) (*getAvailabilityCalendar.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
