package next_available_date

import (
	nextAvailableDate "github.com/m04kA/SMC-AvailabilityService/internal/usecase/next_available_date"
)

// NextAvailableDateResponse HTTP response model
type NextAvailableDateResponse struct {
	BusinessID  int64   `json:"businessId"`
	From        string  `json:"from"`
	Timezone    string  `json:"timezone"`
	HorizonDays int     `json:"horizonDays"`
	Found       bool    `json:"found"`
	Date        *string `json:"date"` // null, если в горизонте нет доступной даты
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *nextAvailableDate.Response) *NextAvailableDateResponse {
	out := &NextAvailableDateResponse{
		BusinessID:  resp.BusinessID,
		From:        resp.From.String(),
		Timezone:    resp.Timezone,
		HorizonDays: resp.HorizonDays,
		Found:       resp.Found,
	}
	if resp.Found {
		date := resp.Date.String()
		out.Date = &date
	}
	return out
}
