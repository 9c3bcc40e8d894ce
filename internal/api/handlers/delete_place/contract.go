package delete_place

import (
	"context"

	"github.com/urbandepot/parking-service/internal/domain"
)

type PlaceService interface {
	Delete(ctx context.Context, id string, actor domain.Actor) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
