package upsert_tariff

import (
	"context"

	"github.com/urbandepot/parking-service/internal/service/tariffs/models"
)

type TariffService interface {
	Upsert(ctx context.Context, req *models.UpsertTariffRequest) (*models.TariffResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
