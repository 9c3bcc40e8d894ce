package get_user_reservations

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/urbandepot/parking-service/internal/api/handlers"
	"github.com/urbandepot/parking-service/internal/api/middleware"
	"github.com/urbandepot/parking-service/internal/service/reservations"
	"github.com/urbandepot/parking-service/internal/service/reservations/models"
)

const (
	msgMissingEmail  = "email пользователя обязателен"
	msgUnauthorized  = "требуется аутентификация"
	msgInvalidParams = "некорректные параметры запроса"
	msgForbidden     = "доступ запрещен"
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

// Handle GET /api/v1/users/{email}/reservations
// Query params: includeCancelled (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]
	if email == "" {
		h.logger.Warn("GET /users/{email}/reservations - Missing email")
		handlers.RespondBadRequest(w, msgMissingEmail)
		return
	}

	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /users/{email}/reservations - Missing actor")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	req := &models.GetUserReservationsRequest{
		UserEmail: email,
		Actor:     actor,
	}
	if s := r.URL.Query().Get("includeCancelled"); s != "" {
		include, err := strconv.ParseBool(s)
		if err != nil {
			h.logger.Warn("GET /users/{email}/reservations - Invalid includeCancelled: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		req.IncludeCancelled = include
	}

	result, err := h.service.GetUserReservations(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("GET /users/{email}/reservations - Access denied: email=%s, user=%s", email, actor.Email)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /users/{email}/reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /users/{email}/reservations - Failed to get reservations: email=%s, error=%v", email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users/{email}/reservations - Reservations retrieved: email=%s, count=%d",
		email, len(result.Reservations))
	handlers.RespondJSON(w, http.StatusOK, result.Reservations)
}
