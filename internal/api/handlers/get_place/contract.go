package get_place

import (
	"context"

	"github.com/urbandepot/parking-service/internal/service/places/models"
)

type PlaceService interface {
	GetByID(ctx context.Context, id string) (*models.PlaceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
