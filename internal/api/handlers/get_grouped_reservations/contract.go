package get_grouped_reservations

import (
	"context"

	"github.com/urbandepot/parking-service/internal/domain"
	"github.com/urbandepot/parking-service/internal/service/reservations/models"
)

type ReservationService interface {
	GetGrouped(ctx context.Context, actor domain.Actor) (*models.GroupedResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
