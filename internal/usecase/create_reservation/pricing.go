package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/urbandepot/parking-service/internal/domain"
	tariffRepo "github.com/urbandepot/parking-service/internal/infra/storage/tariff"
)

// resolveTariff получает тариф с учетом иерархии, при отсутствии использует встроенный
func (uc *UseCase) resolveTariff(ctx context.Context, placeID string, vehicleType domain.VehicleType) (*domain.Tariff, error) {
	tariff, err := uc.tariffRepo.GetWithHierarchy(ctx, placeID, vehicleType)
	if err != nil && !errors.Is(err, tariffRepo.ErrTariffNotFound) {
		return nil, fmt.Errorf("%w: failed to get tariff: %v", ErrInternal, err)
	}

	if tariff == nil {
		uc.logger.Info("CreateReservation: using default tariff for place=%s, vehicle=%s", placeID, vehicleType)
		return domain.DefaultTariff(vehicleType), nil
	}

	uc.logger.Info("CreateReservation: using tariff id=%d", tariff.ID)
	return tariff, nil
}
