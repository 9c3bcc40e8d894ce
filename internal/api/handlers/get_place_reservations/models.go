package get_place_reservations

import (
	"strconv"
	"time"

	"github.com/urbandepot/parking-service/internal/domain"
	"github.com/urbandepot/parking-service/internal/service/reservations/models"
)

// ToServiceRequest собирает запрос к сервису из параметров URL
func ToServiceRequest(placeID string, actor domain.Actor, dateStr, includeCancelledStr string, loc *time.Location) (*models.GetPlaceReservationsRequest, error) {
	req := &models.GetPlaceReservationsRequest{
		PlaceID: placeID,
		Actor:   actor,
	}

	if dateStr != "" {
		date, err := time.ParseInLocation(domain.DateFormat, dateStr, loc)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	if includeCancelledStr != "" {
		include, err := strconv.ParseBool(includeCancelledStr)
		if err != nil {
			return nil, err
		}
		req.IncludeCancelled = include
	}

	return req, nil
}
