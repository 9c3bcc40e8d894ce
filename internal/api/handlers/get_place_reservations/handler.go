package get_place_reservations

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/urbandepot/parking-service/internal/api/handlers"
	"github.com/urbandepot/parking-service/internal/api/middleware"
	"github.com/urbandepot/parking-service/internal/service/reservations"
)

const (
	msgMissingPlaceID = "ID площадки обязателен"
	msgUnauthorized   = "требуется аутентификация"
	msgInvalidParams  = "некорректные параметры запроса"
	msgPlaceNotFound  = "площадка не найдена"
	msgForbidden      = "доступ запрещен"
)

type Handler struct {
	service  ReservationService
	location *time.Location
	logger   Logger
}

func NewHandler(service ReservationService, location *time.Location, logger Logger) *Handler {
	return &Handler{
		service:  service,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/places/{placeId}/reservations
// Query params: date, includeCancelled (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	placeID := mux.Vars(r)["placeId"]
	if placeID == "" {
		h.logger.Warn("GET /places/{id}/reservations - Missing place ID")
		handlers.RespondBadRequest(w, msgMissingPlaceID)
		return
	}

	// Получаем актора из контекста (через middleware Auth)
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /places/{id}/reservations - Missing actor")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	query := r.URL.Query()
	serviceReq, err := ToServiceRequest(placeID, actor, query.Get("date"), query.Get("includeCancelled"), h.location)
	if err != nil {
		h.logger.Warn("GET /places/{id}/reservations - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	// Права владельца проверяет сервис
	result, err := h.service.GetByPlace(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrPlaceNotFound):
			h.logger.Warn("GET /places/{id}/reservations - Place not found: place_id=%s", placeID)
			handlers.RespondNotFound(w, msgPlaceNotFound)

		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("GET /places/{id}/reservations - Access denied: place_id=%s, user=%s", placeID, actor.Email)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /places/{id}/reservations - Failed to get reservations: place_id=%s, error=%v",
				placeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /places/{id}/reservations - Reservations retrieved: place_id=%s, count=%d",
		placeID, len(result.Reservations))
	handlers.RespondJSON(w, http.StatusOK, result.Reservations)
}
