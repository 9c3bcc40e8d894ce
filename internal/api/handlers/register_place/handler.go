package register_place

import (
	"errors"
	"net/http"

	"github.com/urbandepot/parking-service/internal/api/handlers"
	"github.com/urbandepot/parking-service/internal/api/middleware"
	"github.com/urbandepot/parking-service/internal/service/places"
	"github.com/urbandepot/parking-service/internal/service/places/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnauthorized       = "требуется аутентификация"
	msgInvalidInput       = "некорректные данные площадки"
	msgAlreadyExists      = "площадка с таким названием уже зарегистрирована"
	msgForbidden          = "нельзя зарегистрировать площадку на другого владельца"
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

// Handle POST /api/v1/places
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /places - Missing actor")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req models.RegisterPlaceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /places - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.Actor = actor

	result, err := h.service.Register(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, places.ErrInvalidInput):
			h.logger.Warn("POST /places - Invalid input: user=%s, error=%v", actor.Email, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, places.ErrPlaceAlreadyExists):
			h.logger.Warn("POST /places - Place already exists: name=%q", req.Name)
			handlers.RespondConflict(w, msgAlreadyExists)

		case errors.Is(err, places.ErrAccessDenied):
			h.logger.Warn("POST /places - Access denied: user=%s, owner=%s", actor.Email, req.OwnerEmail)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("POST /places - Failed to register place: user=%s, error=%v", actor.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /places - Place registered: id=%s, owner=%s", result.ID, result.OwnerEmail)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
