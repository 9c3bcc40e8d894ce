package get_grouped_reservations

import (
	"errors"
	"net/http"

	"github.com/urbandepot/parking-service/internal/api/handlers"
	"github.com/urbandepot/parking-service/internal/api/middleware"
	"github.com/urbandepot/parking-service/internal/service/reservations"
)

const (
	msgUnauthorized = "требуется аутентификация"
	msgForbidden    = "доступ запрещен"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/reservations/grouped
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /admin/reservations/grouped - Missing actor")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.GetGrouped(r.Context(), actor)
	if err != nil {
		if errors.Is(err, reservations.ErrAccessDenied) {
			h.logger.Warn("GET /admin/reservations/grouped - Access denied: user=%s", actor.Email)
			handlers.RespondForbidden(w, msgForbidden)
			return
		}
		h.logger.Error("GET /admin/reservations/grouped - Failed to group reservations: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/reservations/grouped - Reservations grouped: days=%d", len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, result)
}
