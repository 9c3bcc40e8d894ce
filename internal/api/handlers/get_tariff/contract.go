package get_tariff

import (
	"context"

	"github.com/urbandepot/parking-service/internal/service/tariffs/models"
)

type TariffService interface {
	GetEffective(ctx context.Context, placeID, vehicleType string) (*models.TariffResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
