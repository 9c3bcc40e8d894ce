package list_all_places

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/urbandepot/parking-service/internal/api/middleware"
	"github.com/urbandepot/parking-service/internal/domain"
	"github.com/urbandepot/parking-service/internal/service/places"
	"github.com/urbandepot/parking-service/internal/service/places/models"
	"github.com/urbandepot/parking-service/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) ListAll(ctx context.Context, actor domain.Actor) (*models.PlaceListResponse, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PlaceListResponse), args.Error(1)
}

var admin = domain.Actor{Email: "admin@example.com", Admin: true}

func serve(svc PlaceService) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/places", nil)
	req = req.WithContext(middleware.WithActor(req.Context(), admin))
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	t.Run("includes unverified", func(t *testing.T) {
		svc := &mockService{}
		svc.On("ListAll", mock.Anything, admin).Return(&models.PlaceListResponse{Places: []models.PlaceResponse{
			{ID: "Green_Park", Verified: true},
			{ID: "Blue_Lot"},
		}}, nil)

		rec := serve(svc)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"id":"Blue_Lot"`)
	})

	t.Run("forbidden", func(t *testing.T) {
		svc := &mockService{}
		svc.On("ListAll", mock.Anything, admin).Return(nil, places.ErrAccessDenied)
		assert.Equal(t, http.StatusForbidden, serve(svc).Code)
	})
}
