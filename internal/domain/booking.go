package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending            BookingStatus = "pending"
	StatusConfirmed          BookingStatus = "confirmed"
	StatusInProgress         BookingStatus = "in_progress"
	StatusCompleted          BookingStatus = "completed"
	StatusCancelledByUser    BookingStatus = "cancelled_by_user"
	StatusCancelledByCompany BookingStatus = "cancelled_by_company"
	StatusNoShow             BookingStatus = "no_show"
)

// ReservedBooking is an existing booking that occupies time on the business calendar.
// Bookings are owned by the booking service; this service only reads them.
type ReservedBooking struct {
	ID                int64
	BusinessID        int64
	AppointmentTypeID int64
	StartAt           time.Time
	EndAt             time.Time // includes buffers
	Status            BookingStatus
}

// IsActive returns true if the booking still occupies its time
func (b *ReservedBooking) IsActive() bool {
	return b.Status != StatusCancelledByUser &&
		b.Status != StatusCancelledByCompany &&
		b.Status != StatusNoShow
}

// Interval returns the occupied interval of the booking
func (b *ReservedBooking) Interval() Interval {
	return Interval{Start: b.StartAt, End: b.EndAt}
}
