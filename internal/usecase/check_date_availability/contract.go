package check_date_availability

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/engine/availability"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// ScheduleLoader интерфейс загрузки расписания бизнеса
type ScheduleLoader interface {
	LoadSchedule(ctx context.Context, businessID int64) (*domain.BusinessSchedule, error)
}

// Resolver интерфейс резолвера доступности дат
type Resolver interface {
	Resolve(schedule *domain.BusinessSchedule, date types.Date, viewerTz string) (availability.Decision, error)
}

// TimezoneNormalizer приводит клиентский часовой пояс к поддерживаемому
type TimezoneNormalizer interface {
	Normalize(name string) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
