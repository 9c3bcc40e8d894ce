package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/urbandepot/parking-service/internal/domain"
	"github.com/urbandepot/parking-service/internal/infra/events"
	placeRepo "github.com/urbandepot/parking-service/internal/infra/storage/place"
	reservationRepo "github.com/urbandepot/parking-service/internal/infra/storage/reservation"
	tariffRepo "github.com/urbandepot/parking-service/internal/infra/storage/tariff"
	"github.com/urbandepot/parking-service/pkg/logger"
)

var ist = time.FixedZone("IST", 5*3600+1800)

func at(day, hour, minute int) time.Time {
	return time.Date(2024, 5, day, hour, minute, 0, 0, ist)
}

type fixture struct {
	places       *mockPlaceRepo
	reservations *mockReservationRepo
	tariffs      *mockTariffRepo
	publisher    *mockPublisher
	tx           *fakeTxManager
	metrics      *fakeMetrics
	uc           *UseCase
}

func newFixture() *fixture {
	f := &fixture{
		places:       &mockPlaceRepo{},
		reservations: &mockReservationRepo{},
		tariffs:      &mockTariffRepo{},
		publisher:    &mockPublisher{},
		tx:           &fakeTxManager{},
		metrics:      &fakeMetrics{},
	}
	f.uc = NewUseCase(f.places, f.reservations, f.tariffs, f.tx, f.publisher, f.metrics, ist, logger.NewNop())
	f.uc.timeProvider = fixedTime{now: at(10, 7, 0)}
	return f
}

func verifiedPlace() *domain.Place {
	from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)
	return &domain.Place{
		ID:           "Green_Park",
		Availability: "08:00 - 20:00",
		DateFrom:     &from,
		DateTo:       &to,
		Verified:     true,
	}
}

func validRequest() *Request {
	return &Request{
		PlaceID:      "Green_Park",
		UserEmail:    "renter@example.com",
		FullName:     "Asha Rao",
		Phone:        "9876543210",
		VehicleType:  "Car",
		LicensePlate: "ka01ab1234",
		CheckinDate:  "2024-05-10",
		CheckinTime:  "10:00",
		CheckoutDate: "2024-05-10",
		CheckoutTime: "12:00",
	}
}

func existing(id string, checkin, checkout time.Time) *domain.Reservation {
	return &domain.Reservation{ID: id, PlaceID: "Green_Park", Checkin: checkin, Checkout: checkout, Status: domain.StatusActive}
}

func TestExecute_Success(t *testing.T) {
	f := newFixture()

	f.places.On("GetByIDForUpdate", mock.Anything, "Green_Park").Return(verifiedPlace(), nil)
	f.reservations.On("GetWithFilter", mock.Anything, mock.MatchedBy(func(filter domain.ReservationFilter) bool {
		return filter.From.Equal(at(10, 0, 0)) && filter.To.Equal(at(11, 0, 0))
	})).Return([]*domain.Reservation{
		existing("before", at(10, 8, 0), at(10, 10, 0)), // заканчивается ровно в момент заезда
		existing("after", at(10, 12, 0), at(10, 14, 0)), // начинается ровно в момент выезда
	}, nil)
	f.tariffs.On("GetWithHierarchy", mock.Anything, "Green_Park", domain.VehicleCar).
		Return(nil, tariffRepo.ErrTariffNotFound)
	f.reservations.On("Create", mock.Anything, mock.MatchedBy(func(r *domain.Reservation) bool {
		return r.Checkin.Equal(at(10, 10, 0)) && r.Checkout.Equal(at(10, 12, 0)) &&
			r.VehicleType == domain.VehicleCar && r.LicensePlate == "KA01AB1234" &&
			r.BaseAmount == 30 && r.PlatformFee == 1.5 && r.TotalAmount == 31.5 &&
			r.Status == domain.StatusActive
	})).Return(func(_ context.Context, r *domain.Reservation) *domain.Reservation {
		r.ID = "0b5c8f5e-6d0a-4a53-9d43-3f1e7a1d2c11"
		return r
	}, nil)
	f.publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e events.Event) bool {
		return e.Type == events.TypeReservationCreated && e.Key == "Green_Park"
	})).Return(nil)

	resp, err := f.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, "0b5c8f5e-6d0a-4a53-9d43-3f1e7a1d2c11", resp.ID)
	assert.Equal(t, 31.5, resp.TotalAmount)
	assert.Equal(t, "car", resp.VehicleType)
	assert.Equal(t, 1, f.tx.calls)
	assert.Equal(t, []string{"car"}, f.metrics.created)
	f.places.AssertExpectations(t)
	f.reservations.AssertExpectations(t)
	f.publisher.AssertExpectations(t)
}

func TestExecute_PlaceTariff(t *testing.T) {
	f := newFixture()

	f.places.On("GetByIDForUpdate", mock.Anything, "Green_Park").Return(verifiedPlace(), nil)
	f.reservations.On("GetWithFilter", mock.Anything, mock.Anything).Return([]*domain.Reservation{}, nil)
	f.tariffs.On("GetWithHierarchy", mock.Anything, "Green_Park", domain.VehicleBike).
		Return(&domain.Tariff{ID: 7, VehicleType: domain.VehicleBike, BaseAmount: 40, PlatformFeePercent: 10}, nil)
	f.reservations.On("Create", mock.Anything, mock.Anything).
		Return(func(_ context.Context, r *domain.Reservation) *domain.Reservation { return r }, nil)
	f.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

	req := validRequest()
	req.VehicleType = "bike"
	resp, err := f.uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 40.0, resp.BaseAmount)
	assert.Equal(t, 4.0, resp.PlatformFee)
	assert.Equal(t, 44.0, resp.TotalAmount)
}

func TestExecute_Conflict(t *testing.T) {
	f := newFixture()

	f.places.On("GetByIDForUpdate", mock.Anything, "Green_Park").Return(verifiedPlace(), nil)
	f.reservations.On("GetWithFilter", mock.Anything, mock.Anything).Return([]*domain.Reservation{
		existing("r-1", at(10, 11, 0), at(10, 13, 0)),
	}, nil)

	_, err := f.uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotAlreadyBooked)
	assert.Contains(t, err.Error(), "r-1")
	assert.Equal(t, []string{"create"}, f.metrics.conflicts)
	f.reservations.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestExecute_PublishFailureDoesNotFail(t *testing.T) {
	f := newFixture()

	f.places.On("GetByIDForUpdate", mock.Anything, "Green_Park").Return(verifiedPlace(), nil)
	f.reservations.On("GetWithFilter", mock.Anything, mock.Anything).Return([]*domain.Reservation{}, nil)
	f.tariffs.On("GetWithHierarchy", mock.Anything, mock.Anything, mock.Anything).Return(nil, tariffRepo.ErrTariffNotFound)
	f.reservations.On("Create", mock.Anything, mock.Anything).
		Return(func(_ context.Context, r *domain.Reservation) *domain.Reservation { return r }, nil)
	f.publisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker down"))

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_SerializationFailureIsSlotAlreadyBooked(t *testing.T) {
	serialization := &pq.Error{Code: "40001", Message: "could not serialize access due to read/write dependencies among transactions"}

	t.Run("on insert", func(t *testing.T) {
		f := newFixture()
		f.places.On("GetByIDForUpdate", mock.Anything, "Green_Park").Return(verifiedPlace(), nil)
		f.reservations.On("GetWithFilter", mock.Anything, mock.Anything).Return([]*domain.Reservation{}, nil)
		f.tariffs.On("GetWithHierarchy", mock.Anything, mock.Anything, mock.Anything).Return(nil, tariffRepo.ErrTariffNotFound)
		f.reservations.On("Create", mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("%w: Create - execute insert: %w", reservationRepo.ErrExecQuery, serialization))

		_, err := f.uc.Execute(context.Background(), validRequest())

		assert.ErrorIs(t, err, ErrSlotAlreadyBooked)
		assert.NotErrorIs(t, err, ErrInternal)
		assert.Empty(t, f.metrics.created)
		f.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})

	t.Run("on commit", func(t *testing.T) {
		f := newFixture()
		f.tx.commitErr = fmt.Errorf("commit: %w", serialization)
		f.places.On("GetByIDForUpdate", mock.Anything, "Green_Park").Return(verifiedPlace(), nil)
		f.reservations.On("GetWithFilter", mock.Anything, mock.Anything).Return([]*domain.Reservation{}, nil)
		f.tariffs.On("GetWithHierarchy", mock.Anything, mock.Anything, mock.Anything).Return(nil, tariffRepo.ErrTariffNotFound)
		f.reservations.On("Create", mock.Anything, mock.Anything).
			Return(func(_ context.Context, r *domain.Reservation) *domain.Reservation { return r }, nil)

		_, err := f.uc.Execute(context.Background(), validRequest())

		assert.ErrorIs(t, err, ErrSlotAlreadyBooked)
		f.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})

	t.Run("other driver errors stay internal", func(t *testing.T) {
		f := newFixture()
		f.places.On("GetByIDForUpdate", mock.Anything, "Green_Park").Return(nil, &pq.Error{Code: "57014"})

		_, err := f.uc.Execute(context.Background(), validRequest())

		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestExecute_MultiDayIgnoresOpeningHours(t *testing.T) {
	f := newFixture()

	f.places.On("GetByIDForUpdate", mock.Anything, "Green_Park").Return(verifiedPlace(), nil)
	f.reservations.On("GetWithFilter", mock.Anything, mock.MatchedBy(func(filter domain.ReservationFilter) bool {
		return filter.From.Equal(at(10, 0, 0)) && filter.To.Equal(at(12, 0, 0))
	})).Return([]*domain.Reservation{}, nil)
	f.tariffs.On("GetWithHierarchy", mock.Anything, mock.Anything, mock.Anything).Return(nil, tariffRepo.ErrTariffNotFound)
	f.reservations.On("Create", mock.Anything, mock.Anything).
		Return(func(_ context.Context, r *domain.Reservation) *domain.Reservation { return r }, nil)
	f.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

	req := validRequest()
	req.CheckinTime = "18:00"
	req.CheckoutDate = "2024-05-11"
	req.CheckoutTime = "09:00"

	_, err := f.uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(req *Request)
		place   func(p *domain.Place)
		wantErr error
	}{
		{
			name:    "unknown vehicle type",
			mutate:  func(req *Request) { req.VehicleType = "truck" },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "missing phone",
			mutate:  func(req *Request) { req.Phone = " " },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "bad email",
			mutate:  func(req *Request) { req.UserEmail = "not-an-email" },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "malformed time",
			mutate:  func(req *Request) { req.CheckinTime = "10am" },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "checkout equals checkin",
			mutate:  func(req *Request) { req.CheckoutTime = "10:00" },
			wantErr: ErrInvalidInterval,
		},
		{
			name:    "checkout before checkin",
			mutate:  func(req *Request) { req.CheckoutTime = "09:00" },
			wantErr: ErrInvalidInterval,
		},
		{
			name:    "checkin in the past",
			mutate:  func(req *Request) { req.CheckinTime = "06:00" },
			wantErr: ErrCheckinInPast,
		},
		{
			name:    "too long",
			mutate:  func(req *Request) { req.CheckoutDate = "2024-07-10" },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "place not verified",
			place:   func(p *domain.Place) { p.Verified = false },
			wantErr: ErrPlaceNotVerified,
		},
		{
			name:    "outside listing period",
			mutate:  func(req *Request) { req.CheckinDate, req.CheckoutDate = "2024-06-02", "2024-06-02" },
			wantErr: ErrOutsideListingPeriod,
		},
		{
			name:    "outside opening hours",
			mutate:  func(req *Request) { req.CheckoutTime = "21:00" },
			wantErr: ErrOutsideOpeningHours,
		},
		{
			name:    "broken availability",
			place:   func(p *domain.Place) { p.Availability = "always" },
			wantErr: ErrInvalidAvailability,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()

			place := verifiedPlace()
			if tt.place != nil {
				tt.place(place)
			}
			f.places.On("GetByIDForUpdate", mock.Anything, "Green_Park").Return(place, nil)

			req := validRequest()
			if tt.mutate != nil {
				tt.mutate(req)
			}

			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			f.reservations.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestExecute_PlaceNotFound(t *testing.T) {
	f := newFixture()
	f.places.On("GetByIDForUpdate", mock.Anything, "Green_Park").Return(nil, placeRepo.ErrPlaceNotFound)

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrPlaceNotFound)
}
