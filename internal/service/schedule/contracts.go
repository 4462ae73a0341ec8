package schedule

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// ScheduleLoader интерфейс источника расписаний
type ScheduleLoader interface {
	LoadSchedule(ctx context.Context, businessID int64) (*domain.BusinessSchedule, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
