package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	BusinessID        int64
	AppointmentTypeID int64
	Date              types.Date // календарная дата в часовом поясе бизнеса
	Timezone          string     // часовой пояс зрителя, пустой - часовой пояс бизнеса
}

// Response модель ответа со списком доступных слотов
type Response struct {
	BusinessID        int64
	AppointmentTypeID int64
	Date              types.Date
	Timezone          string // часовой пояс, в котором показаны слоты
	DurationMinutes   int
	SlotStepMinutes   int // длительность с буферами
	Slots             []Slot
}

// Slot модель слота записи
type Slot struct {
	StartAt   time.Time        // абсолютное время начала
	EndAt     time.Time        // начало + длительность + буферы
	LocalDate types.Date       // дата начала в часовом поясе зрителя
	LocalTime types.TimeString // время начала в часовом поясе зрителя (например, "10:00")
	Display   string           // "2025-12-25 10:00 MSK"
}
