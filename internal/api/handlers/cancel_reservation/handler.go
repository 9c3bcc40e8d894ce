package cancel_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/urbandepot/parking-service/internal/api/handlers"
	"github.com/urbandepot/parking-service/internal/api/middleware"
	"github.com/urbandepot/parking-service/internal/service/reservations"
)

const (
	msgMissingReservationID = "ID бронирования обязателен"
	msgUnauthorized         = "требуется аутентификация"
	msgNotFound             = "бронирование не найдено"
	msgForbidden            = "доступ запрещен"
	msgCannotCancel         = "бронирование не может быть отменено"
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

// Handle PATCH /api/v1/reservations/{reservationId}/cancel
// Отменить может арендатор, владелец площадки или администратор
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID := mux.Vars(r)["reservationId"]
	if reservationID == "" {
		h.logger.Warn("PATCH /reservations/{id}/cancel - Missing reservation ID")
		handlers.RespondBadRequest(w, msgMissingReservationID)
		return
	}

	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		h.logger.Warn("PATCH /reservations/{id}/cancel - Missing actor")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	err := h.service.Cancel(r.Context(), reservationID, actor)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id}/cancel - Reservation not found: id=%s", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("PATCH /reservations/{id}/cancel - Access denied: id=%s, user=%s", reservationID, actor.Email)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, reservations.ErrCannotCancel):
			h.logger.Warn("PATCH /reservations/{id}/cancel - Cannot cancel: id=%s", reservationID)
			handlers.RespondBadRequest(w, msgCannotCancel)

		default:
			h.logger.Error("PATCH /reservations/{id}/cancel - Failed to cancel reservation: id=%s, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id}/cancel - Reservation cancelled: id=%s, user=%s", reservationID, actor.Email)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
