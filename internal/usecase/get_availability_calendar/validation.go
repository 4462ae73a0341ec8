package get_availability_calendar

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, maxDays int) error {
	if req.BusinessID <= 0 {
		return fmt.Errorf("%w: businessID must be positive", ErrInvalidInput)
	}

	if req.Days < 0 || req.Days > maxDays {
		return fmt.Errorf("%w: days must be in [1, %d]", ErrInvalidInput, maxDays)
	}

	return nil
}
