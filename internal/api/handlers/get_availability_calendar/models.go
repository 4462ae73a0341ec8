package get_availability_calendar

import (
	getAvailabilityCalendar "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_availability_calendar"
)

// CalendarResponse HTTP response model
type CalendarResponse struct {
	BusinessID int64         `json:"businessId"`
	From       string        `json:"from"`
	Timezone   string        `json:"timezone"`
	Days       []CalendarDay `json:"days"`
}

// CalendarDay доступность одной даты
type CalendarDay struct {
	Date      string `json:"date"`
	Available bool   `json:"available"`
	Rule      string `json:"rule"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailabilityCalendar.Response) *CalendarResponse {
	days := make([]CalendarDay, len(resp.Days))
	for i, d := range resp.Days {
		days[i] = CalendarDay{
			Date:      d.Date.String(),
			Available: d.Available,
			Rule:      d.Rule,
		}
	}

	return &CalendarResponse{
		BusinessID: resp.BusinessID,
		From:       resp.From.String(),
		Timezone:   resp.Timezone,
		Days:       days,
	}
}
