package exceptions

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// ClosedMonth месяц, в котором бизнес закрыт целиком
type ClosedMonth struct {
	Month time.Month `json:"month"` // 1-12
	Year  int        `json:"year"`
}

// Contains возвращает true, если дата попадает в этот месяц
func (c ClosedMonth) Contains(date types.Date) bool {
	return c.Year == date.Year && c.Month == date.Month
}

// ParseClosedMonth разбирает customSchedule исключения closed_months: {"month": 12, "year": 2025}
func ParseClosedMonth(raw json.RawMessage) (ClosedMonth, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return ClosedMonth{}, fmt.Errorf("%w: customSchedule is empty", ErrMalformedExceptionPayload)
	}

	var payload struct {
		Month *int `json:"month"`
		Year  *int `json:"year"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return ClosedMonth{}, fmt.Errorf("%w: %v", ErrMalformedExceptionPayload, err)
	}
	if payload.Month == nil || payload.Year == nil {
		return ClosedMonth{}, fmt.Errorf("%w: month and year are required", ErrMalformedExceptionPayload)
	}
	if *payload.Month < 1 || *payload.Month > 12 {
		return ClosedMonth{}, fmt.Errorf("%w: month %d out of range", ErrMalformedExceptionPayload, *payload.Month)
	}
	if *payload.Year < 1 {
		return ClosedMonth{}, fmt.Errorf("%w: year %d out of range", ErrMalformedExceptionPayload, *payload.Year)
	}

	return ClosedMonth{Month: time.Month(*payload.Month), Year: *payload.Year}, nil
}
