package next_available_date

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, maxHorizonDays int) error {
	if req.BusinessID <= 0 {
		return fmt.Errorf("%w: businessID must be positive", ErrInvalidInput)
	}

	if req.HorizonDays < 0 {
		return fmt.Errorf("%w: horizon must not be negative", ErrInvalidInput)
	}

	if req.HorizonDays > maxHorizonDays {
		return fmt.Errorf("%w: horizon must not exceed %d days", ErrInvalidInput, maxHorizonDays)
	}

	return nil
}
