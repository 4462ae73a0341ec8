package domain

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Interval is a half-open absolute time interval [Start, End)
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps returns true if [i.Start, i.End) and [start, end) share at least one instant.
// Touching intervals do not overlap.
func (i Interval) Overlaps(start, end time.Time) bool {
	return i.Start.Before(end) && start.Before(i.End)
}

// LocalInterval is an open interval of wall-clock time on some date, in the business timezone
type LocalInterval struct {
	Start types.TimeString
	End   types.TimeString
}

// ResolvedSlot is a bookable start time. It is never persisted.
type ResolvedSlot struct {
	StartInstant time.Time
	EndInstant   time.Time        // StartInstant + duration + buffers
	LocalDate    types.Date       // in the viewer timezone
	LocalTime    types.TimeString // in the viewer timezone
	DisplayLocal string           // "2006-01-02 15:04 MST" in the viewer timezone
}
