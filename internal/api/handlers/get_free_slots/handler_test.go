package get_free_slots

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	getFreeSlots "github.com/urbandepot/parking-service/internal/usecase/get_free_slots"
	"github.com/urbandepot/parking-service/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *getFreeSlots.Request) (*getFreeSlots.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*getFreeSlots.Response), args.Error(1)
}

var ist = time.FixedZone("IST", 5*3600+30*60)

func serve(uc GetFreeSlotsUseCase, placeID, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/places/"+placeID+"/free-slots"+query, nil)
	req = mux.SetURLVars(req, map[string]string{"placeId": placeID})
	rec := httptest.NewRecorder()
	NewHandler(uc, ist, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	uc := &mockUseCase{}
	day := time.Date(2024, 5, 10, 0, 0, 0, 0, ist)
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *getFreeSlots.Request) bool {
		return req.PlaceID == "Green_Park" && req.Date != nil && req.Date.Equal(day)
	})).Return(&getFreeSlots.Response{
		PlaceID:        "Green_Park",
		Date:           day,
		Availability:   "08:00 - 20:00",
		AvailableSlots: []string{"08:00 - 10:00", "12:00 - 20:00"},
	}, nil)

	rec := serve(uc, "Green_Park", "?date=2024-05-10")
	require.Equal(t, http.StatusOK, rec.Code)

	var body FreeSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, FreeSlotsResponse{
		PlaceID:        "Green_Park",
		Date:           "2024-05-10",
		Availability:   "08:00 - 20:00",
		AvailableSlots: []string{"08:00 - 10:00", "12:00 - 20:00"},
	}, body)
	uc.AssertExpectations(t)
}

func TestHandle_EmptySlotsRenderAsArray(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *getFreeSlots.Request) bool {
		return req.Date == nil
	})).Return(&getFreeSlots.Response{
		PlaceID:      "Green_Park",
		Date:         time.Date(2024, 5, 10, 0, 0, 0, 0, ist),
		Availability: "08:00 - 20:00",
	}, nil)

	rec := serve(uc, "Green_Park", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"availableSlots":[]`)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		err    error
		status int
	}{
		{name: "invalid date", query: "?date=10-05-2024", status: http.StatusBadRequest},
		{name: "place not found", err: getFreeSlots.ErrPlaceNotFound, status: http.StatusNotFound},
		{name: "broken availability", err: fmt.Errorf("%w: bad", getFreeSlots.ErrInvalidAvailability), status: http.StatusBadRequest},
		{name: "invalid input", err: getFreeSlots.ErrInvalidInput, status: http.StatusBadRequest},
		{name: "internal", err: getFreeSlots.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			if tt.err != nil {
				uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)
			}

			rec := serve(uc, "Green_Park", tt.query)
			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error"`)
			uc.AssertExpectations(t)
		})
	}
}
