package list_all_places

import (
	"errors"
	"net/http"

	"github.com/urbandepot/parking-service/internal/api/handlers"
	"github.com/urbandepot/parking-service/internal/api/middleware"
	"github.com/urbandepot/parking-service/internal/service/places"
)

const (
	msgUnauthorized = "требуется аутентификация"
	msgForbidden    = "доступ запрещен"
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

// Handle GET /api/v1/admin/places
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /admin/places - Missing actor")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.ListAll(r.Context(), actor)
	if err != nil {
		if errors.Is(err, places.ErrAccessDenied) {
			h.logger.Warn("GET /admin/places - Access denied: user=%s", actor.Email)
			handlers.RespondForbidden(w, msgForbidden)
			return
		}
		h.logger.Error("GET /admin/places - Failed to list places: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/places - Places retrieved: count=%d", len(result.Places))
	handlers.RespondJSON(w, http.StatusOK, result.Places)
}
