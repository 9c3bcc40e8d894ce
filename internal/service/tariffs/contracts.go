package tariffs

import (
	"context"

	"github.com/urbandepot/parking-service/internal/domain"
)

// TariffRepository интерфейс репозитория тарифов
type TariffRepository interface {
	GetWithHierarchy(ctx context.Context, placeID string, vehicleType domain.VehicleType) (*domain.Tariff, error)
	Upsert(ctx context.Context, tariff *domain.Tariff) (*domain.Tariff, error)
}

// PlaceRepository интерфейс репозитория площадок
type PlaceRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Place, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
