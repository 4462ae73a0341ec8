package availability

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Converter интерфейс конвертера часовых поясов
type Converter interface {
	Location(tz string) (*time.Location, error)
	DayWindow(date types.Date, tz string) (time.Time, time.Time, error)
	StartOfDay(date types.Date, tz string) (time.Time, error)
}

// Recorder интерфейс для метрик решений
type Recorder interface {
	ObserveDecision(rule string, available bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type noopRecorder struct{}

func (noopRecorder) ObserveDecision(string, bool) {}
