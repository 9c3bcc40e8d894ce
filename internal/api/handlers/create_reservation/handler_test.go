package create_reservation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/urbandepot/parking-service/internal/api/middleware"
	"github.com/urbandepot/parking-service/internal/domain"
	createReservation "github.com/urbandepot/parking-service/internal/usecase/create_reservation"
	"github.com/urbandepot/parking-service/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *createReservation.Request) (*createReservation.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*createReservation.Response), args.Error(1)
}

const body = `{
	"placeId": "Green_Park",
	"fullName": "Asha Rao",
	"phone": "+919800000000",
	"vehicleType": "car",
	"licensePlate": "KA01AB1234",
	"checkinDate": "2024-05-10",
	"checkinTime": "10:00",
	"checkoutDate": "2024-05-10",
	"checkoutTime": "12:00"
}`

var renter = domain.Actor{Email: "asha@example.com"}

func serve(uc CreateReservationUseCase, payload string, actor *domain.Actor) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(payload))
	if actor != nil {
		req = req.WithContext(middleware.WithActor(req.Context(), *actor))
	}
	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+30*60)
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *createReservation.Request) bool {
		return req.UserEmail == renter.Email && req.PlaceID == "Green_Park" && req.CheckinTime == "10:00"
	})).Return(&createReservation.Response{
		ID:           "r-1",
		PlaceID:      "Green_Park",
		UserEmail:    renter.Email,
		VehicleType:  "car",
		LicensePlate: "KA01AB1234",
		Checkin:      time.Date(2024, 5, 10, 10, 0, 0, 0, ist),
		Checkout:     time.Date(2024, 5, 10, 12, 0, 0, 0, ist),
		BaseAmount:   30,
		PlatformFee:  1.5,
		TotalAmount:  31.5,
		Status:       "active",
		CreatedAt:    time.Date(2024, 5, 10, 7, 0, 0, 0, ist),
	}, nil)

	rec := serve(uc, body, &renter)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp ReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "r-1", resp.ID)
	assert.Equal(t, "2024-05-10T10:00:00+05:30", resp.Checkin)
	assert.Equal(t, 31.5, resp.TotalAmount)
	uc.AssertExpectations(t)
}

func TestHandle_Rejected(t *testing.T) {
	t.Run("no actor", func(t *testing.T) {
		rec := serve(&mockUseCase{}, body, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("user email in body is not accepted", func(t *testing.T) {
		rec := serve(&mockUseCase{}, `{"userEmail":"someone@else.com"}`, &renter)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "slot booked", err: createReservation.ErrSlotAlreadyBooked, status: http.StatusConflict},
		{name: "place not found", err: createReservation.ErrPlaceNotFound, status: http.StatusNotFound},
		{name: "not verified", err: createReservation.ErrPlaceNotVerified, status: http.StatusBadRequest},
		{name: "listing period", err: createReservation.ErrOutsideListingPeriod, status: http.StatusBadRequest},
		{name: "opening hours", err: createReservation.ErrOutsideOpeningHours, status: http.StatusBadRequest},
		{name: "availability", err: createReservation.ErrInvalidAvailability, status: http.StatusBadRequest},
		{name: "interval", err: createReservation.ErrInvalidInterval, status: http.StatusBadRequest},
		{name: "past", err: createReservation.ErrCheckinInPast, status: http.StatusBadRequest},
		{name: "input", err: createReservation.ErrInvalidInput, status: http.StatusBadRequest},
		{name: "internal", err: createReservation.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := serve(uc, body, &renter)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
