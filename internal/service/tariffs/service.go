package tariffs

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/urbandepot/parking-service/internal/domain"
	placeRepo "github.com/urbandepot/parking-service/internal/infra/storage/place"
	tariffRepo "github.com/urbandepot/parking-service/internal/infra/storage/tariff"
	"github.com/urbandepot/parking-service/internal/service/tariffs/models"
)

// Service сервис для работы с тарифами
type Service struct {
	tariffRepo TariffRepository
	placeRepo  PlaceRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса тарифов
func NewService(tariffRepo TariffRepository, placeRepo PlaceRepository, logger Logger) *Service {
	return &Service{
		tariffRepo: tariffRepo,
		placeRepo:  placeRepo,
		logger:     logger,
	}
}

// GetEffective возвращает действующий тариф площадки для типа транспорта
// Иерархия: тариф площадки -> глобальный тариф -> встроенные значения
func (s *Service) GetEffective(ctx context.Context, placeID, vehicleType string) (*models.TariffResponse, error) {
	s.logger.Info("GetEffective: place=%s, vehicle=%s", placeID, vehicleType)

	vt, ok := domain.ParseVehicleType(vehicleType)
	if !ok {
		s.logger.Warn("GetEffective: unknown vehicle type %q", vehicleType)
		return nil, fmt.Errorf("%w: unknown vehicleType %q", ErrInvalidInput, vehicleType)
	}

	if err := s.ensurePlace(ctx, "GetEffective", placeID); err != nil {
		return nil, err
	}

	tariff, err := s.tariffRepo.GetWithHierarchy(ctx, placeID, vt)
	if err != nil {
		if !errors.Is(err, tariffRepo.ErrTariffNotFound) {
			s.logger.Error("GetEffective: repository error: %v", err)
			return nil, fmt.Errorf("%w: GetEffective - repository error: %v", ErrInternal, err)
		}
		tariff = domain.DefaultTariff(vt)
	}

	return models.FromDomainTariff(tariff), nil
}

// Upsert создает или обновляет тариф
// Доступно только администратору
func (s *Service) Upsert(ctx context.Context, req *models.UpsertTariffRequest) (*models.TariffResponse, error) {
	s.logger.Info("Upsert: place=%v, vehicle=%s, base=%.2f, fee=%.2f%% by user=%s",
		req.PlaceID, req.VehicleType, req.BaseAmount, req.PlatformFeePercent, req.Actor.Email)

	if !req.Actor.Admin {
		s.logger.Warn("Upsert: user=%s is not an admin", req.Actor.Email)
		return nil, ErrAccessDenied
	}

	vt, err := validateUpsert(req)
	if err != nil {
		s.logger.Warn("Upsert: validation failed: %v", err)
		return nil, err
	}

	if req.PlaceID != nil {
		if err := s.ensurePlace(ctx, "Upsert", *req.PlaceID); err != nil {
			return nil, err
		}
	}

	saved, err := s.tariffRepo.Upsert(ctx, &domain.Tariff{
		PlaceID:            req.PlaceID,
		VehicleType:        vt,
		BaseAmount:         domain.RoundAmount(req.BaseAmount),
		PlatformFeePercent: req.PlatformFeePercent,
	})
	if err != nil {
		s.logger.Error("Upsert: repository error: %v", err)
		return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Upsert: successfully saved tariff id=%d", saved.ID)
	return models.FromDomainTariff(saved), nil
}

func (s *Service) ensurePlace(ctx context.Context, op, placeID string) error {
	if _, err := s.placeRepo.GetByID(ctx, placeID); err != nil {
		if errors.Is(err, placeRepo.ErrPlaceNotFound) {
			s.logger.Warn("%s: place id=%s not found", op, placeID)
			return ErrPlaceNotFound
		}
		s.logger.Error("%s: failed to get place id=%s: %v", op, placeID, err)
		return fmt.Errorf("%w: %s - failed to get place: %v", ErrInternal, op, err)
	}
	return nil
}

func validateUpsert(req *models.UpsertTariffRequest) (domain.VehicleType, error) {
	vt, ok := domain.ParseVehicleType(req.VehicleType)
	if !ok {
		return "", fmt.Errorf("%w: unknown vehicleType %q", ErrInvalidInput, req.VehicleType)
	}

	if req.PlaceID != nil && strings.TrimSpace(*req.PlaceID) == "" {
		return "", fmt.Errorf("%w: placeId must not be empty", ErrInvalidInput)
	}

	if req.BaseAmount <= 0 || req.BaseAmount > domain.MaxBaseAmount {
		return "", fmt.Errorf("%w: baseAmount must be in (0, %.0f]", ErrInvalidInput, float64(domain.MaxBaseAmount))
	}

	if req.PlatformFeePercent < 0 || req.PlatformFeePercent > domain.MaxPlatformFeePercent {
		return "", fmt.Errorf("%w: platformFeePercent must be in [0, %.0f]", ErrInvalidInput, float64(domain.MaxPlatformFeePercent))
	}

	return vt, nil
}
