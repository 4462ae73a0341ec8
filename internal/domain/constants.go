package domain

// Search and batch limits
const (
	DefaultHorizonDays  = 60
	MaxHorizonDays      = 366
	DefaultCalendarDays = 30
	MaxCalendarDays     = 93
)

// Appointment type validation constants
const (
	MaxDurationMinutes = 1440
	MaxBufferMinutes   = 480
)

// Display format constants
const (
	DisplayFormat = "2006-01-02 15:04 MST" // slot display in viewer timezone
)

// ActiveStatuses список статусов бронирований, которые занимают время.
// Используется для исключения пересечений при генерации слотов.
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
}
