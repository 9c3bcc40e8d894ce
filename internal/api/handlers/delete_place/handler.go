package delete_place

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

// Handle DELETE /api/v1/places/{placeId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	placeID := mux.Vars(r)["placeId"]
	if placeID == "" {
		h.logger.Warn("DELETE /places/{id} - Missing place ID")
		handlers.RespondBadRequest(w, msgMissingPlaceID)
		return
	}

	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		h.logger.Warn("DELETE /places/{id} - Missing actor")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	if err := h.service.Delete(r.Context(), placeID, actor); err != nil {
		switch {
		case errors.Is(err, places.ErrPlaceNotFound):
			h.logger.Warn("DELETE /places/{id} - Place not found: place_id=%s", placeID)
			handlers.RespondNotFound(w, msgPlaceNotFound)

		case errors.Is(err, places.ErrAccessDenied):
			h.logger.Warn("DELETE /places/{id} - Access denied: place_id=%s, user=%s", placeID, actor.Email)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /places/{id} - Failed to delete place: place_id=%s, error=%v", placeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /places/{id} - Place deleted: place_id=%s, user=%s", placeID, actor.Email)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
