package slots

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/engine/availability"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// IntervalResolver возвращает часы работы на дату по каскаду правил доступности
type IntervalResolver interface {
	OpenIntervals(schedule *domain.BusinessSchedule, date types.Date, viewerTz string, appointmentTypeID *int64) ([]domain.LocalInterval, availability.Decision, error)
}

// Converter интерфейс конвертера часовых поясов
type Converter interface {
	Location(tz string) (*time.Location, error)
	Instant(date types.Date, t types.TimeString, tz string) (time.Time, error)
}

// Recorder интерфейс для метрик генерации
type Recorder interface {
	ObserveGeneratedSlots(n int)
}

type noopRecorder struct{}

func (noopRecorder) ObserveGeneratedSlots(int) {}
