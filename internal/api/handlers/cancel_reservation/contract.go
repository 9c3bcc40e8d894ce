package cancel_reservation

import (
	"context"

	"github.com/urbandepot/parking-service/internal/domain"
)

type ReservationService interface {
	Cancel(ctx context.Context, id string, actor domain.Actor) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
