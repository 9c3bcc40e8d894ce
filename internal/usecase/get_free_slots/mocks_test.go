package get_free_slots

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/urbandepot/parking-service/internal/domain"
)

type mockPlaceRepo struct{ mock.Mock }

func (m *mockPlaceRepo) GetByID(ctx context.Context, id string) (*domain.Place, error) {
	args := m.Called(ctx, id)
	place, _ := args.Get(0).(*domain.Place)
	return place, args.Error(1)
}

type mockReservationRepo struct{ mock.Mock }

func (m *mockReservationRepo) GetWithFilter(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	args := m.Called(ctx, filter)
	reservations, _ := args.Get(0).([]*domain.Reservation)
	return reservations, args.Error(1)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }
