package get_reservation

import (
	"context"

	"github.com/urbandepot/parking-service/internal/domain"
	"github.com/urbandepot/parking-service/internal/service/reservations/models"
)

type ReservationService interface {
	GetByID(ctx context.Context, id string, actor domain.Actor) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
