package schedule

import (
	"encoding/json"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// cachedSchedule представление расписания в redis
type cachedSchedule struct {
	BusinessID    int64             `json:"businessId"`
	Timezone      string            `json:"timezone"`
	WeeklySlots   []cachedWeekly    `json:"weeklySlots"`
	Exceptions    []cachedException `json:"exceptions"`
	BlockedRanges []cachedBlocked   `json:"blockedRanges"`
}

type cachedWeekly struct {
	ID          int64            `json:"id"`
	Weekday     int              `json:"weekday"`
	StartTime   types.TimeString `json:"startTime"`
	EndTime     types.TimeString `json:"endTime"`
	IsAvailable bool             `json:"isAvailable"`
}

type cachedException struct {
	ID                int64             `json:"id"`
	Date              types.Date        `json:"date"`
	Type              string            `json:"type"`
	AppointmentTypeID *int64            `json:"appointmentTypeId,omitempty"`
	StartTime         *types.TimeString `json:"startTime,omitempty"`
	EndTime           *types.TimeString `json:"endTime,omitempty"`
	Reason            *string           `json:"reason,omitempty"`
	CustomSchedule    json.RawMessage   `json:"customSchedule,omitempty"`
}

type cachedBlocked struct {
	ID        int64     `json:"id"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Reason    *string   `json:"reason,omitempty"`
	IsAllDay  bool      `json:"isAllDay"`
}

func fromDomain(s *domain.BusinessSchedule) cachedSchedule {
	c := cachedSchedule{
		BusinessID:    s.BusinessID,
		Timezone:      s.Timezone,
		WeeklySlots:   make([]cachedWeekly, len(s.WeeklySlots)),
		Exceptions:    make([]cachedException, len(s.Exceptions)),
		BlockedRanges: make([]cachedBlocked, len(s.BlockedRanges)),
	}

	for i, w := range s.WeeklySlots {
		c.WeeklySlots[i] = cachedWeekly{
			ID:          w.ID,
			Weekday:     int(w.Weekday),
			StartTime:   w.StartTime,
			EndTime:     w.EndTime,
			IsAvailable: w.IsAvailable,
		}
	}
	for i, e := range s.Exceptions {
		c.Exceptions[i] = cachedException{
			ID:                e.ID,
			Date:              e.Date,
			Type:              string(e.Type),
			AppointmentTypeID: e.AppointmentTypeID,
			StartTime:         e.StartTime,
			EndTime:           e.EndTime,
			Reason:            e.Reason,
			CustomSchedule:    e.CustomSchedule,
		}
	}
	for i, b := range s.BlockedRanges {
		c.BlockedRanges[i] = cachedBlocked{
			ID:        b.ID,
			StartDate: b.StartDate,
			EndDate:   b.EndDate,
			Reason:    b.Reason,
			IsAllDay:  b.IsAllDay,
		}
	}

	return c
}

func (c cachedSchedule) toDomain() *domain.BusinessSchedule {
	s := &domain.BusinessSchedule{
		BusinessID:    c.BusinessID,
		Timezone:      c.Timezone,
		WeeklySlots:   make([]domain.WeeklyAvailabilitySlot, len(c.WeeklySlots)),
		Exceptions:    make([]domain.AvailabilityException, len(c.Exceptions)),
		BlockedRanges: make([]domain.BlockedDateRange, len(c.BlockedRanges)),
	}

	for i, w := range c.WeeklySlots {
		s.WeeklySlots[i] = domain.WeeklyAvailabilitySlot{
			ID:          w.ID,
			BusinessID:  c.BusinessID,
			Weekday:     time.Weekday(w.Weekday),
			StartTime:   w.StartTime,
			EndTime:     w.EndTime,
			IsAvailable: w.IsAvailable,
		}
	}
	for i, e := range c.Exceptions {
		s.Exceptions[i] = domain.AvailabilityException{
			ID:                e.ID,
			BusinessID:        c.BusinessID,
			Date:              e.Date,
			Type:              domain.ExceptionType(e.Type),
			AppointmentTypeID: e.AppointmentTypeID,
			StartTime:         e.StartTime,
			EndTime:           e.EndTime,
			Reason:            e.Reason,
			CustomSchedule:    e.CustomSchedule,
		}
	}
	for i, b := range c.BlockedRanges {
		s.BlockedRanges[i] = domain.BlockedDateRange{
			ID:         b.ID,
			BusinessID: c.BusinessID,
			StartDate:  b.StartDate,
			EndDate:    b.EndDate,
			Reason:     b.Reason,
			IsAllDay:   b.IsAllDay,
		}
	}

	return s
}
