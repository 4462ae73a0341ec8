package get_weekly_schedule

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/service/schedule/models"
)

// WeeklyScheduleResponse HTTP response model
type WeeklyScheduleResponse struct {
	BusinessID int64         `json:"businessId"`
	Timezone   string        `json:"timezone"`
	Days       []DaySchedule `json:"days"`
}

// DaySchedule часы работы дня недели
type DaySchedule struct {
	Weekday   int        `json:"weekday"` // 0 = воскресенье
	Name      string     `json:"name"`
	Open      bool       `json:"open"`
	Source    string     `json:"source"` // weekly | default | closed
	Intervals []Interval `json:"intervals"`
}

// Interval интервал работы в часовом поясе бизнеса
type Interval struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.WeeklyScheduleResponse) *WeeklyScheduleResponse {
	days := make([]DaySchedule, len(resp.Days))
	for i, d := range resp.Days {
		intervals := make([]Interval, len(d.Intervals))
		for j, in := range d.Intervals {
			intervals[j] = Interval{Start: in.Start.String(), End: in.End.String()}
		}
		days[i] = DaySchedule{
			Weekday:   int(d.Weekday),
			Name:      d.Weekday.String(),
			Open:      d.Open,
			Source:    d.Source,
			Intervals: intervals,
		}
	}

	return &WeeklyScheduleResponse{
		BusinessID: resp.BusinessID,
		Timezone:   resp.Timezone,
		Days:       days,
	}
}
