package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/engine/slots"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// ScheduleLoader интерфейс загрузки расписания бизнеса
type ScheduleLoader interface {
	LoadSchedule(ctx context.Context, businessID int64) (*domain.BusinessSchedule, error)
}

// AppointmentTypeRepository интерфейс репозитория типов записи
type AppointmentTypeRepository interface {
	GetByID(ctx context.Context, businessID, id int64) (*domain.AppointmentType, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// ListReserved получает активные бронирования бизнеса, пересекающиеся с [from, to)
	ListReserved(ctx context.Context, businessID int64, from, to time.Time) ([]*domain.ReservedBooking, error)
}

// SlotGenerator интерфейс генератора слотов
type SlotGenerator interface {
	Generate(req *slots.Request) ([]domain.ResolvedSlot, error)
}

// Converter интерфейс конвертера часовых поясов
type Converter interface {
	DayWindow(date types.Date, tz string) (time.Time, time.Time, error)
}

// TimezoneNormalizer приводит клиентский часовой пояс к поддерживаемому
type TimezoneNormalizer interface {
	Normalize(name string) (string, error)
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
