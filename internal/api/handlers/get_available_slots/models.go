package get_available_slots

import (
	"time"

	getAvailableSlots "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	BusinessID        int64           `json:"businessId"`
	AppointmentTypeID int64           `json:"appointmentTypeId"`
	Date              string          `json:"date"`
	Timezone          string          `json:"timezone"`
	DurationMinutes   int             `json:"durationMinutes"`
	SlotStepMinutes   int             `json:"slotStepMinutes"`
	Slots             []AvailableSlot `json:"slots"`
}

// AvailableSlot модель слота записи
type AvailableSlot struct {
	StartAt   string `json:"startAt"` // RFC3339, UTC
	EndAt     string `json:"endAt"`
	LocalDate string `json:"localDate"`
	LocalTime string `json:"localTime"`
	Display   string `json:"display"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartAt:   slot.StartAt.UTC().Format(time.RFC3339),
			EndAt:     slot.EndAt.UTC().Format(time.RFC3339),
			LocalDate: slot.LocalDate.String(),
			LocalTime: slot.LocalTime.String(),
			Display:   slot.Display,
		}
	}

	return &AvailableSlotsResponse{
		BusinessID:        resp.BusinessID,
		AppointmentTypeID: resp.AppointmentTypeID,
		Date:              resp.Date.String(),
		Timezone:          resp.Timezone,
		DurationMinutes:   resp.DurationMinutes,
		SlotStepMinutes:   resp.SlotStepMinutes,
		Slots:             slots,
	}
}
