package domain

import (
	"encoding/json"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// WeeklyAvailabilitySlot is a recurring open interval of a business on one weekday.
// A weekday with no slots is open during the configured default hours;
// a weekday whose slots are all IsAvailable=false is closed.
type WeeklyAvailabilitySlot struct {
	ID          int64
	BusinessID  int64
	Weekday     time.Weekday // 0 = Sunday
	StartTime   types.TimeString
	EndTime     types.TimeString
	IsAvailable bool
}

// ExceptionType is the closed set of date-specific override kinds
type ExceptionType string

const (
	ExceptionUnavailable         ExceptionType = "unavailable"
	ExceptionCustomHours         ExceptionType = "custom_hours"
	ExceptionSpecialAvailability ExceptionType = "special_availability"
	ExceptionClosedMonths        ExceptionType = "closed_months"
)

// AvailabilityException overrides the weekly schedule on a specific calendar date
type AvailabilityException struct {
	ID                int64
	BusinessID        int64
	Date              types.Date // timezone-naive
	Type              ExceptionType
	AppointmentTypeID *int64 // nil = applies to all appointment types
	StartTime         *types.TimeString
	EndTime           *types.TimeString
	Reason            *string
	CustomSchedule    json.RawMessage // closed_months: {"month": 1..12, "year": YYYY}
}

// HasHours returns true if the exception carries both start and end times
func (e *AvailabilityException) HasHours() bool {
	return e.StartTime != nil && e.EndTime != nil && !e.StartTime.IsZero() && !e.EndTime.IsZero()
}

// AppliesTo returns true if the exception is relevant for the given appointment type.
// A nil appointmentTypeID means "any type".
func (e *AvailabilityException) AppliesTo(appointmentTypeID *int64) bool {
	if e.AppointmentTypeID == nil || appointmentTypeID == nil {
		return true
	}
	return *e.AppointmentTypeID == *appointmentTypeID
}

// BlockedDateRange is a coarse blackout (vacations, booking-window limits).
// All-day ranges are inclusive calendar-date ranges stored as UTC midnight: only the UTC Y/M/D
// of StartDate and EndDate matter (whatever location the driver attached to the value) and they
// are interpreted in the reference timezone. Timed ranges are absolute instants.
type BlockedDateRange struct {
	ID         int64
	BusinessID int64
	StartDate  time.Time
	EndDate    time.Time
	Reason     *string
	IsAllDay   bool
}

// BusinessSchedule bundles the read-only availability inputs of one business
type BusinessSchedule struct {
	BusinessID    int64
	Timezone      string // IANA identifier of the business location
	WeeklySlots   []WeeklyAvailabilitySlot
	Exceptions    []AvailabilityException
	BlockedRanges []BlockedDateRange
}
