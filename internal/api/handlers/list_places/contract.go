package list_places

import (
	"context"

	"github.com/urbandepot/parking-service/internal/service/places/models"
)

type PlaceService interface {
	ListPublic(ctx context.Context) (*models.PlaceListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
