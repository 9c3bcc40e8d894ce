package get_place

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/urbandepot/parking-service/internal/api/handlers"
	"github.com/urbandepot/parking-service/internal/service/places"
)

const (
	msgMissingPlaceID = "ID площадки обязателен"
	msgPlaceNotFound  = "площадка не найдена"
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

// Handle GET /api/v1/places/{placeId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	placeID := mux.Vars(r)["placeId"]
	if placeID == "" {
		h.logger.Warn("GET /places/{id} - Missing place ID")
		handlers.RespondBadRequest(w, msgMissingPlaceID)
		return
	}

	result, err := h.service.GetByID(r.Context(), placeID)
	if err != nil {
		if errors.Is(err, places.ErrPlaceNotFound) {
			h.logger.Warn("GET /places/{id} - Place not found: place_id=%s", placeID)
			handlers.RespondNotFound(w, msgPlaceNotFound)
			return
		}
		h.logger.Error("GET /places/{id} - Failed to get place: place_id=%s, error=%v", placeID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /places/{id} - Place retrieved: place_id=%s", placeID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
