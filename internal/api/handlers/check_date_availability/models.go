package check_date_availability

import (
	checkDateAvailability "github.com/m04kA/SMC-AvailabilityService/internal/usecase/check_date_availability"
)

// DateAvailabilityResponse HTTP response model
type DateAvailabilityResponse struct {
	BusinessID int64  `json:"businessId"`
	Date       string `json:"date"`
	Timezone   string `json:"timezone"`
	Available  bool   `json:"available"`
	Rule       string `json:"rule"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkDateAvailability.Response) *DateAvailabilityResponse {
	return &DateAvailabilityResponse{
		BusinessID: resp.BusinessID,
		Date:       resp.Date.String(),
		Timezone:   resp.Timezone,
		Available:  resp.Available,
		Rule:       resp.Rule,
	}
}
