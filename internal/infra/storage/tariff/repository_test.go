package tariff

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urbandepot/parking-service/internal/domain"
	"github.com/urbandepot/parking-service/pkg/ptr"
)

var tariffColumns = []string{"id", "place_id", "vehicle_type", "base_amount", "platform_fee_percent", "created_at", "updated_at"}

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewRepository(db), mock
}

func TestGetWithHierarchy(t *testing.T) {
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	t.Run("place tariff wins", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectQuery(`FROM tariffs WHERE vehicle_type = \$1 AND place_id = \$2`).
			WithArgs(domain.VehicleCar, "Green_Park").
			WillReturnRows(sqlmock.NewRows(tariffColumns).AddRow(7, "Green_Park", "car", 50.0, 10.0, now, now))

		tariff, err := repo.GetWithHierarchy(context.Background(), "Green_Park", domain.VehicleCar)
		require.NoError(t, err)
		assert.Equal(t, int64(7), tariff.ID)
		assert.Equal(t, "Green_Park", ptr.Value(tariff.PlaceID))
		assert.False(t, tariff.IsGlobal())
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("falls back to global", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectQuery(`AND place_id = \$2`).WillReturnRows(sqlmock.NewRows(tariffColumns))
		mock.ExpectQuery(`FROM tariffs WHERE vehicle_type = \$1 AND place_id IS NULL`).
			WithArgs(domain.VehicleCar).
			WillReturnRows(sqlmock.NewRows(tariffColumns).AddRow(1, nil, "car", 40.0, 5.0, now, now))

		tariff, err := repo.GetWithHierarchy(context.Background(), "Green_Park", domain.VehicleCar)
		require.NoError(t, err)
		assert.True(t, tariff.IsGlobal())
		assert.Equal(t, 40.0, tariff.BaseAmount)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nothing configured", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectQuery(`AND place_id = \$2`).WillReturnRows(sqlmock.NewRows(tariffColumns))
		mock.ExpectQuery(`AND place_id IS NULL`).WillReturnRows(sqlmock.NewRows(tariffColumns))

		_, err := repo.GetWithHierarchy(context.Background(), "Green_Park", domain.VehicleBike)
		assert.ErrorIs(t, err, ErrTariffNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("driver error stops the lookup", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectQuery(`AND place_id = \$2`).WillReturnError(errors.New("connection reset"))

		_, err := repo.GetWithHierarchy(context.Background(), "Green_Park", domain.VehicleCar)
		assert.ErrorIs(t, err, ErrExecQuery)
		assert.NotErrorIs(t, err, ErrTariffNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpsert(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO tariffs .* ON CONFLICT .* DO UPDATE SET .* RETURNING id, created_at, updated_at`).
		WithArgs(nil, domain.VehicleScooter, 25.0, 4.0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(3, now, now))

	tariff, err := repo.Upsert(context.Background(), &domain.Tariff{
		VehicleType:        domain.VehicleScooter,
		BaseAmount:         25,
		PlatformFeePercent: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), tariff.ID)
	assert.Equal(t, now, tariff.UpdatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}
