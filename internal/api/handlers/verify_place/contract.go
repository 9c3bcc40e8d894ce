package verify_place

import (
	"context"

	"github.com/urbandepot/parking-service/internal/domain"
	"github.com/urbandepot/parking-service/internal/service/places/models"
)

type PlaceService interface {
	Verify(ctx context.Context, id string, actor domain.Actor) (*models.PlaceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
