package get_place

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/urbandepot/parking-service/internal/service/places"
	"github.com/urbandepot/parking-service/internal/service/places/models"
	"github.com/urbandepot/parking-service/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) GetByID(ctx context.Context, id string) (*models.PlaceResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PlaceResponse), args.Error(1)
}

func serve(svc PlaceService) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/places/Green_Park", nil)
	req = mux.SetURLVars(req, map[string]string{"placeId": "Green_Park"})
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc := &mockService{}
		svc.On("GetByID", mock.Anything, "Green_Park").
			Return(&models.PlaceResponse{ID: "Green_Park", Availability: "08:00 - 20:00"}, nil)

		rec := serve(svc)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"availability":"08:00 - 20:00"`)
		assert.NotContains(t, rec.Body.String(), `"reservations"`)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &mockService{}
		svc.On("GetByID", mock.Anything, "Green_Park").Return(nil, places.ErrPlaceNotFound)
		assert.Equal(t, http.StatusNotFound, serve(svc).Code)
	})

	t.Run("internal", func(t *testing.T) {
		svc := &mockService{}
		svc.On("GetByID", mock.Anything, "Green_Park").Return(nil, places.ErrInternal)
		assert.Equal(t, http.StatusInternalServerError, serve(svc).Code)
	})
}
