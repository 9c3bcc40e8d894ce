package reservations

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/urbandepot/parking-service/internal/domain"
	"github.com/urbandepot/parking-service/internal/infra/events"
	placeRepo "github.com/urbandepot/parking-service/internal/infra/storage/place"
	reservationRepo "github.com/urbandepot/parking-service/internal/infra/storage/reservation"
	"github.com/urbandepot/parking-service/internal/service/reservations/models"
	"github.com/urbandepot/parking-service/pkg/logger"
)

type mockReservationRepo struct{ mock.Mock }

func (m *mockReservationRepo) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*domain.Reservation)
	return r, args.Error(1)
}

func (m *mockReservationRepo) GetWithFilter(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	args := m.Called(ctx, filter)
	list, _ := args.Get(0).([]*domain.Reservation)
	return list, args.Error(1)
}

func (m *mockReservationRepo) Cancel(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockPlaceRepo struct{ mock.Mock }

func (m *mockPlaceRepo) GetByID(ctx context.Context, id string) (*domain.Place, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*domain.Place)
	return p, args.Error(1)
}

type mockPublisher struct{ mock.Mock }

func (m *mockPublisher) Publish(ctx context.Context, event events.Event) error {
	return m.Called(ctx, event).Error(0)
}

var ist = time.FixedZone("IST", 5*3600+1800)

var (
	renter    = domain.Actor{Email: "renter@example.com"}
	owner     = domain.Actor{Email: "owner@example.com"}
	stranger  = domain.Actor{Email: "stranger@example.com"}
	admin     = domain.Actor{Email: "admin@parkease.in", Admin: true}
	greenPark = &domain.Place{ID: "Green_Park", OwnerEmail: "owner@example.com"}
	checkin   = time.Date(2024, 5, 10, 10, 0, 0, 0, ist)
	checkout  = time.Date(2024, 5, 10, 12, 0, 0, 0, ist)
)

func activeReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:          "res-1",
		PlaceID:     "Green_Park",
		UserEmail:   "renter@example.com",
		VehicleType: domain.VehicleCar,
		Checkin:     checkin,
		Checkout:    checkout,
		PlatformFee: 1.5,
		Status:      domain.StatusActive,
	}
}

func newService() (*Service, *mockReservationRepo, *mockPlaceRepo, *mockPublisher) {
	reservations := &mockReservationRepo{}
	places := &mockPlaceRepo{}
	publisher := &mockPublisher{}
	return NewService(reservations, places, publisher, ist, logger.NewNop()), reservations, places, publisher
}

func TestGetByID_Access(t *testing.T) {
	tests := []struct {
		name    string
		actor   domain.Actor
		wantErr error
	}{
		{name: "renter", actor: renter},
		{name: "place owner", actor: owner},
		{name: "admin", actor: admin},
		{name: "stranger", actor: stranger, wantErr: ErrAccessDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, reservations, places, _ := newService()
			reservations.On("GetByID", mock.Anything, "res-1").Return(activeReservation(), nil)
			places.On("GetByID", mock.Anything, "Green_Park").Return(greenPark, nil)

			resp, err := svc.GetByID(context.Background(), "res-1", tt.actor)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "2024-05-10", resp.CheckinDate)
			assert.Equal(t, "10:00", resp.CheckinTime)
			assert.Equal(t, "12:00", resp.CheckoutTime)
		})
	}
}

func TestGetByID_NotFound(t *testing.T) {
	svc, reservations, _, _ := newService()
	reservations.On("GetByID", mock.Anything, "missing").Return(nil, reservationRepo.ErrReservationNotFound)

	_, err := svc.GetByID(context.Background(), "missing", admin)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestGetByPlace(t *testing.T) {
	t.Run("owner gets reservations of the day", func(t *testing.T) {
		svc, reservations, places, _ := newService()
		places.On("GetByID", mock.Anything, "Green_Park").Return(greenPark, nil)
		reservations.On("GetWithFilter", mock.Anything, mock.MatchedBy(func(f domain.ReservationFilter) bool {
			return f.From != nil && f.From.Equal(time.Date(2024, 5, 10, 0, 0, 0, 0, ist)) &&
				f.To != nil && f.To.Equal(time.Date(2024, 5, 11, 0, 0, 0, 0, ist))
		})).Return([]*domain.Reservation{activeReservation()}, nil)

		day := time.Date(2024, 5, 10, 15, 0, 0, 0, ist)
		resp, err := svc.GetByPlace(context.Background(), &models.GetPlaceReservationsRequest{
			PlaceID: "Green_Park",
			Actor:   owner,
			Date:    &day,
		})

		require.NoError(t, err)
		assert.Len(t, resp.Reservations, 1)
	})

	t.Run("renter is not allowed", func(t *testing.T) {
		svc, _, places, _ := newService()
		places.On("GetByID", mock.Anything, "Green_Park").Return(greenPark, nil)

		_, err := svc.GetByPlace(context.Background(), &models.GetPlaceReservationsRequest{PlaceID: "Green_Park", Actor: renter})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("place not found", func(t *testing.T) {
		svc, _, places, _ := newService()
		places.On("GetByID", mock.Anything, "Nowhere").Return(nil, placeRepo.ErrPlaceNotFound)

		_, err := svc.GetByPlace(context.Background(), &models.GetPlaceReservationsRequest{PlaceID: "Nowhere", Actor: admin})
		assert.ErrorIs(t, err, ErrPlaceNotFound)
	})
}

func TestGetUserReservations(t *testing.T) {
	svc, reservations, _, _ := newService()
	reservations.On("GetWithFilter", mock.Anything, mock.MatchedBy(func(f domain.ReservationFilter) bool {
		return f.UserEmail != nil && *f.UserEmail == "renter@example.com"
	})).Return([]*domain.Reservation{activeReservation()}, nil)

	resp, err := svc.GetUserReservations(context.Background(), &models.GetUserReservationsRequest{
		UserEmail: "renter@example.com",
		Actor:     renter,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Reservations, 1)

	_, err = svc.GetUserReservations(context.Background(), &models.GetUserReservationsRequest{
		UserEmail: "renter@example.com",
		Actor:     stranger,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCancel(t *testing.T) {
	t.Run("renter cancels and event is published", func(t *testing.T) {
		svc, reservations, _, publisher := newService()
		reservations.On("GetByID", mock.Anything, "res-1").Return(activeReservation(), nil)
		reservations.On("Cancel", mock.Anything, "res-1").Return(nil)
		publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e events.Event) bool {
			return e.Type == events.TypeReservationCancelled
		})).Return(nil)

		require.NoError(t, svc.Cancel(context.Background(), "res-1", renter))
		publisher.AssertExpectations(t)
	})

	t.Run("publish failure is not returned", func(t *testing.T) {
		svc, reservations, places, publisher := newService()
		reservations.On("GetByID", mock.Anything, "res-1").Return(activeReservation(), nil)
		places.On("GetByID", mock.Anything, "Green_Park").Return(greenPark, nil)
		reservations.On("Cancel", mock.Anything, "res-1").Return(nil)
		publisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker down"))

		assert.NoError(t, svc.Cancel(context.Background(), "res-1", owner))
	})

	t.Run("already cancelled", func(t *testing.T) {
		svc, reservations, _, _ := newService()
		cancelled := activeReservation()
		cancelled.Status = domain.StatusCancelled
		reservations.On("GetByID", mock.Anything, "res-1").Return(cancelled, nil)

		assert.ErrorIs(t, svc.Cancel(context.Background(), "res-1", renter), ErrCannotCancel)
		reservations.AssertNotCalled(t, "Cancel", mock.Anything, mock.Anything)
	})

	t.Run("concurrent cancel", func(t *testing.T) {
		svc, reservations, _, _ := newService()
		reservations.On("GetByID", mock.Anything, "res-1").Return(activeReservation(), nil)
		reservations.On("Cancel", mock.Anything, "res-1").Return(reservationRepo.ErrReservationNotFound)

		assert.ErrorIs(t, svc.Cancel(context.Background(), "res-1", renter), ErrCannotCancel)
	})

	t.Run("stranger", func(t *testing.T) {
		svc, reservations, places, _ := newService()
		reservations.On("GetByID", mock.Anything, "res-1").Return(activeReservation(), nil)
		places.On("GetByID", mock.Anything, "Green_Park").Return(greenPark, nil)

		assert.ErrorIs(t, svc.Cancel(context.Background(), "res-1", stranger), ErrAccessDenied)
	})
}

func TestGetGrouped(t *testing.T) {
	svc, reservations, _, _ := newService()

	first := activeReservation()
	first.CreatedAt = time.Date(2024, 5, 9, 20, 0, 0, 0, time.UTC) // 10 мая по IST
	second := activeReservation()
	second.ID = "res-2"
	second.PlatformFee = 1
	second.CreatedAt = time.Date(2024, 5, 10, 8, 0, 0, 0, ist)
	third := activeReservation()
	third.ID = "res-3"
	third.PlatformFee = 0.5
	third.CreatedAt = time.Date(2024, 5, 8, 8, 0, 0, 0, ist)

	reservations.On("GetWithFilter", mock.Anything, domain.ReservationFilter{IncludeCancelled: true}).
		Return([]*domain.Reservation{third, first, second}, nil)

	resp, err := svc.GetGrouped(context.Background(), admin)

	require.NoError(t, err)
	require.Len(t, resp.Days, 2)
	assert.Equal(t, "2024-05-10", resp.Days[0].Date)
	assert.Equal(t, 2.5, resp.Days[0].TotalPlatformFee)
	assert.Len(t, resp.Days[0].Reservations, 2)
	assert.Equal(t, "2024-05-08", resp.Days[1].Date)
	assert.Equal(t, 0.5, resp.Days[1].TotalPlatformFee)

	_, err = svc.GetGrouped(context.Background(), owner)
	assert.ErrorIs(t, err, ErrAccessDenied)
}
