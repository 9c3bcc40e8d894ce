package list_places

import (
	"net/http"

	"github.com/urbandepot/parking-service/internal/api/handlers"
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

// Handle GET /api/v1/places
// Только проверенные площадки с действующим периодом, с бронированиями на сегодня
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListPublic(r.Context())
	if err != nil {
		h.logger.Error("GET /places - Failed to list places: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /places - Places retrieved: count=%d", len(result.Places))
	handlers.RespondJSON(w, http.StatusOK, result.Places)
}
