package domain

// AppointmentType describes a bookable service of a business
type AppointmentType struct {
	ID                  int64
	BusinessID          int64
	Name                string
	DurationMinutes     int
	BufferBeforeMinutes int
	BufferAfterMinutes  int
	IsActive            bool
}

// SlotStepMinutes returns the step used to pack slots: duration plus both buffers
func (a *AppointmentType) SlotStepMinutes() int {
	return a.DurationMinutes + a.BufferBeforeMinutes + a.BufferAfterMinutes
}
