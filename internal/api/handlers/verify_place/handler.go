package verify_place

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/urbandepot/parking-service/internal/api/handlers"
	"github.com/urbandepot/parking-service/internal/api/middleware"
	"github.com/urbandepot/parking-service/internal/service/places"
)

const (
	msgMissingPlaceID = "ID площадки обязателен"
	msgUnauthorized   = "требуется аутентификация"
	msgPlaceNotFound  = "площадка не найдена"
	msgForbidden      = "доступ запрещен"
)

type Handler struct {
	service PlaceService
	logger  Logger
}

func NewHandler(service PlaceService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/places/{placeId}/verify
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	placeID := mux.Vars(r)["placeId"]
	if placeID == "" {
		h.logger.Warn("POST /admin/places/{id}/verify - Missing place ID")
		handlers.RespondBadRequest(w, msgMissingPlaceID)
		return
	}

	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /admin/places/{id}/verify - Missing actor")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.Verify(r.Context(), placeID, actor)
	if err != nil {
		switch {
		case errors.Is(err, places.ErrPlaceNotFound):
			h.logger.Warn("POST /admin/places/{id}/verify - Place not found: place_id=%s", placeID)
			handlers.RespondNotFound(w, msgPlaceNotFound)

		case errors.Is(err, places.ErrAccessDenied):
			h.logger.Warn("POST /admin/places/{id}/verify - Access denied: user=%s", actor.Email)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("POST /admin/places/{id}/verify - Failed to verify place: place_id=%s, error=%v", placeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/places/{id}/verify - Place verified: place_id=%s, admin=%s", placeID, actor.Email)
	handlers.RespondJSON(w, http.StatusOK, result)
}
