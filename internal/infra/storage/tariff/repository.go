package tariff

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/urbandepot/parking-service/internal/domain"
	"github.com/urbandepot/parking-service/pkg/dbmetrics"
	"github.com/urbandepot/parking-service/pkg/psqlbuilder"
)

// DBExecutor интерфейс для выполнения запросов (БД или транзакция)
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для работы с тарифами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория тарифов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByPlaceAndVehicle получает тариф для площадки и типа транспорта
// placeID = nil ищет глобальный тариф
func (r *Repository) GetByPlaceAndVehicle(ctx context.Context, placeID *string, vehicleType domain.VehicleType) (*domain.Tariff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"place_id",
		"vehicle_type",
		"base_amount",
		"platform_fee_percent",
		"created_at",
		"updated_at",
	).
		From("tariffs").
		Where(squirrel.Eq{"vehicle_type": vehicleType})

	// Фильтрация по place_id (NULL или конкретное значение)
	if placeID == nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"place_id": nil})
	} else {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"place_id": *placeID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPlaceAndVehicle - build select query: %w", ErrBuildQuery, err)
	}

	var tariff domain.Tariff
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&tariff.ID,
		&tariff.PlaceID,
		&tariff.VehicleType,
		&tariff.BaseAmount,
		&tariff.PlatformFeePercent,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTariffNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPlaceAndVehicle - scan tariff: %w", ErrScanRow, err)
	}

	tariff.CreatedAt = createdAt.Time
	tariff.UpdatedAt = updatedAt.Time

	return &tariff, nil
}

// GetWithHierarchy получает тариф с учетом иерархии приоритетов:
// 1. Тариф конкретной площадки
// 2. Глобальный тариф
//
// Если тариф не найден ни на одном уровне, возвращает ErrTariffNotFound
// (вызывающая сторона применяет встроенные значения по умолчанию)
func (r *Repository) GetWithHierarchy(ctx context.Context, placeID string, vehicleType domain.VehicleType) (*domain.Tariff, error) {
	tariff, err := r.GetByPlaceAndVehicle(ctx, &placeID, vehicleType)
	if err == nil {
		return tariff, nil
	}
	if !errors.Is(err, ErrTariffNotFound) {
		return nil, fmt.Errorf("%w: GetWithHierarchy - level 1 (place): %w", ErrExecQuery, err)
	}

	tariff, err = r.GetByPlaceAndVehicle(ctx, nil, vehicleType)
	if err == nil {
		return tariff, nil
	}
	if !errors.Is(err, ErrTariffNotFound) {
		return nil, fmt.Errorf("%w: GetWithHierarchy - level 2 (global): %w", ErrExecQuery, err)
	}

	return nil, ErrTariffNotFound
}

// Upsert создает или обновляет тариф для (площадка, тип транспорта)
func (r *Repository) Upsert(ctx context.Context, tariff *domain.Tariff) (*domain.Tariff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("tariffs").
		Columns(
			"place_id",
			"vehicle_type",
			"base_amount",
			"platform_fee_percent",
		).
		Values(
			tariff.PlaceID,
			tariff.VehicleType,
			tariff.BaseAmount,
			tariff.PlatformFeePercent,
		).
		Suffix("ON CONFLICT ((COALESCE(place_id, '')), vehicle_type) DO UPDATE SET " +
			"base_amount = EXCLUDED.base_amount, " +
			"platform_fee_percent = EXCLUDED.platform_fee_percent, " +
			"updated_at = NOW() " +
			"RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %w", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&tariff.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %w", ErrExecQuery, err)
	}

	tariff.CreatedAt = createdAt.Time
	tariff.UpdatedAt = updatedAt.Time

	return tariff, nil
}
