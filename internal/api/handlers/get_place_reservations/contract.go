package get_place_reservations

import (
	"context"

	"github.com/urbandepot/parking-service/internal/service/reservations/models"
)

type ReservationService interface {
	GetByPlace(ctx context.Context, req *models.GetPlaceReservationsRequest) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
