package get_free_slots

import (
	"context"
	"errors"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/urbandepot/parking-service/internal/domain"
	placeRepo "github.com/urbandepot/parking-service/internal/infra/storage/place"
	"github.com/urbandepot/parking-service/pkg/logger"
)

var ist = time.FixedZone("IST", 5*3600+1800)

func at(day, hour, minute int) time.Time {
	return time.Date(2024, 5, day, hour, minute, 0, 0, ist)
}

func reservation(id string, checkin, checkout time.Time) *domain.Reservation {
	return &domain.Reservation{ID: id, PlaceID: "Lot", Checkin: checkin, Checkout: checkout, Status: domain.StatusActive}
}

func newUseCase(places *mockPlaceRepo, reservations *mockReservationRepo) *UseCase {
	uc := NewUseCase(places, reservations, ist, logger.NewNop())
	uc.timeProvider = fixedTime{now: at(10, 7, 0)}
	return uc
}

func TestExecute_FreeSlots(t *testing.T) {
	tests := []struct {
		name         string
		availability string
		reservations []*domain.Reservation
		want         []string
	}{
		{
			name:         "no reservations",
			availability: "08:00 - 20:00",
			want:         []string{"08:00 - 20:00"},
		},
		{
			name:         "two reservations",
			availability: "08:00 - 20:00",
			reservations: []*domain.Reservation{
				reservation("a", at(10, 10, 0), at(10, 12, 0)),
				reservation("b", at(10, 14, 0), at(10, 15, 0)),
			},
			want: []string{"08:00 - 10:00", "12:00 - 14:00", "15:00 - 20:00"},
		},
		{
			name:         "overnight reservation from the previous day is clipped",
			availability: "00:00 - 24:00",
			reservations: []*domain.Reservation{
				reservation("a", at(9, 22, 0), at(10, 6, 0)),
				reservation("b", at(10, 23, 0), at(11, 2, 0)),
			},
			want: []string{"06:00 - 23:00"},
		},
		{
			name:         "window fully booked",
			availability: "08:00 - 20:00",
			reservations: []*domain.Reservation{
				reservation("a", at(10, 7, 0), at(10, 21, 0)),
			},
			want: []string{},
		},
		{
			name:         "cancelled reservations are ignored",
			availability: "08:00 - 20:00",
			reservations: []*domain.Reservation{
				{ID: "c", Checkin: at(10, 9, 0), Checkout: at(10, 10, 0), Status: domain.StatusCancelled},
			},
			want: []string{"08:00 - 20:00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			places := &mockPlaceRepo{}
			reservations := &mockReservationRepo{}

			places.On("GetByID", mock.Anything, "Lot").
				Return(&domain.Place{ID: "Lot", Availability: tt.availability}, nil)
			reservations.On("GetWithFilter", mock.Anything, mock.MatchedBy(func(f domain.ReservationFilter) bool {
				return f.From.Equal(at(10, 0, 0)) && f.To.Equal(at(11, 0, 0)) && !f.IncludeCancelled
			})).Return(tt.reservations, nil)

			resp, err := newUseCase(places, reservations).Execute(context.Background(), &Request{PlaceID: "Lot"})

			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.AvailableSlots)
			assert.Equal(t, "2024-05-10", resp.Date.Format(domain.DateFormat))
			assert.Equal(t, tt.availability, resp.Availability)
			places.AssertExpectations(t)
			reservations.AssertExpectations(t)
		})
	}
}

func TestExecute_ExplicitDate(t *testing.T) {
	places := &mockPlaceRepo{}
	reservations := &mockReservationRepo{}

	places.On("GetByID", mock.Anything, "Lot").
		Return(&domain.Place{ID: "Lot", Availability: "09:00 - 18:00"}, nil)
	reservations.On("GetWithFilter", mock.Anything, mock.MatchedBy(func(f domain.ReservationFilter) bool {
		return f.From.Equal(at(12, 0, 0))
	})).Return([]*domain.Reservation{}, nil)

	date := time.Date(2024, 5, 12, 0, 0, 0, 0, ist)
	resp, err := newUseCase(places, reservations).Execute(context.Background(), &Request{PlaceID: "Lot", Date: &date})

	require.NoError(t, err)
	assert.Equal(t, []string{"09:00 - 18:00"}, resp.AvailableSlots)
}

func TestExecute_DaylightSavingDay(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 2024-03-10 длится 23 часа: в 02:00 часы переводятся на 03:00
	local := func(hour int) time.Time {
		return time.Date(2024, 3, 10, hour, 0, 0, 0, newYork)
	}

	places := &mockPlaceRepo{}
	reservations := &mockReservationRepo{}

	places.On("GetByID", mock.Anything, "Lot").
		Return(&domain.Place{ID: "Lot", Availability: "09:00 - 18:00"}, nil)
	reservations.On("GetWithFilter", mock.Anything, mock.MatchedBy(func(f domain.ReservationFilter) bool {
		return f.From.Equal(local(0)) && f.To.Equal(time.Date(2024, 3, 11, 0, 0, 0, 0, newYork))
	})).Return([]*domain.Reservation{
		reservation("a", local(10), local(11)),
		reservation("b", local(17), time.Date(2024, 3, 11, 1, 0, 0, 0, newYork)),
	}, nil)

	uc := NewUseCase(places, reservations, newYork, logger.NewNop())
	uc.timeProvider = fixedTime{now: local(7)}

	resp, err := uc.Execute(context.Background(), &Request{PlaceID: "Lot"})

	require.NoError(t, err)
	assert.Equal(t, []string{"09:00 - 10:00", "11:00 - 17:00"}, resp.AvailableSlots)
}

func TestExecute_Errors(t *testing.T) {
	t.Run("empty place id", func(t *testing.T) {
		_, err := newUseCase(&mockPlaceRepo{}, &mockReservationRepo{}).Execute(context.Background(), &Request{})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("place not found", func(t *testing.T) {
		places := &mockPlaceRepo{}
		places.On("GetByID", mock.Anything, "Nope").Return(nil, placeRepo.ErrPlaceNotFound)

		_, err := newUseCase(places, &mockReservationRepo{}).Execute(context.Background(), &Request{PlaceID: "Nope"})
		assert.ErrorIs(t, err, ErrPlaceNotFound)
	})

	t.Run("malformed availability", func(t *testing.T) {
		places := &mockPlaceRepo{}
		places.On("GetByID", mock.Anything, "Lot").
			Return(&domain.Place{ID: "Lot", Availability: "morning"}, nil)

		_, err := newUseCase(places, &mockReservationRepo{}).Execute(context.Background(), &Request{PlaceID: "Lot"})
		assert.ErrorIs(t, err, ErrInvalidAvailability)
	})

	t.Run("reversed availability", func(t *testing.T) {
		places := &mockPlaceRepo{}
		places.On("GetByID", mock.Anything, "Lot").
			Return(&domain.Place{ID: "Lot", Availability: "20:00 - 08:00"}, nil)

		_, err := newUseCase(places, &mockReservationRepo{}).Execute(context.Background(), &Request{PlaceID: "Lot"})
		assert.ErrorIs(t, err, ErrInvalidAvailability)
	})

	t.Run("repository failure", func(t *testing.T) {
		places := &mockPlaceRepo{}
		reservations := &mockReservationRepo{}
		places.On("GetByID", mock.Anything, "Lot").
			Return(&domain.Place{ID: "Lot", Availability: "08:00 - 20:00"}, nil)
		reservations.On("GetWithFilter", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

		_, err := newUseCase(places, reservations).Execute(context.Background(), &Request{PlaceID: "Lot"})
		assert.ErrorIs(t, err, ErrInternal)
	})
}
