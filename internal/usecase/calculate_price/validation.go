package calculate_price

import (
	"fmt"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CourtID <= 0 {
		return fmt.Errorf("%w: courtID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeFormat, err)
	}

	if req.Resources.HasNegativeCounts() {
		return ErrInvalidResourceCount
	}

	if req.CoachID != nil && *req.CoachID <= 0 {
		return fmt.Errorf("%w: coachID must be positive", ErrInvalidInput)
	}

	return nil
}
