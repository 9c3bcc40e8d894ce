package get_free_slots

import (
	"fmt"
	"strings"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.PlaceID) == "" {
		return fmt.Errorf("%w: placeId is required", ErrInvalidInput)
	}

	if req.Date != nil && req.Date.IsZero() {
		return fmt.Errorf("%w: date is invalid", ErrInvalidInput)
	}

	return nil
}
