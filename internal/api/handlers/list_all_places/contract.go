package list_all_places

import (
	"context"

	"github.com/urbandepot/parking-service/internal/domain"
	"github.com/urbandepot/parking-service/internal/service/places/models"
)

type PlaceService interface {
	ListAll(ctx context.Context, actor domain.Actor) (*models.PlaceListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
