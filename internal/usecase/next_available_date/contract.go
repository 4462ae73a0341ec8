package next_available_date

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// ScheduleLoader интерфейс загрузки расписания бизнеса
type ScheduleLoader interface {
	LoadSchedule(ctx context.Context, businessID int64) (*domain.BusinessSchedule, error)
}

// Resolver интерфейс резолвера доступности дат
type Resolver interface {
	NextAvailableDate(schedule *domain.BusinessSchedule, from types.Date, viewerTz string, horizonDays int) (types.Date, bool, error)
}

// TimezoneNormalizer приводит клиентский часовой пояс к поддерживаемому
type TimezoneNormalizer interface {
	Normalize(name string) (string, error)
}

// Converter интерфейс конвертера для определения "сегодня" в часовом поясе
type Converter interface {
	ToLocal(instant time.Time, tz string) (types.Date, types.TimeString, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
