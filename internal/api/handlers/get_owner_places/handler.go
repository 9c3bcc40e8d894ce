package get_owner_places

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/urbandepot/parking-service/internal/api/handlers"
	"github.com/urbandepot/parking-service/internal/api/middleware"
	"github.com/urbandepot/parking-service/internal/service/places"
)

const (
	msgMissingEmail = "email владельца обязателен"
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

// Handle GET /api/v1/users/{email}/places
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]
	if email == "" {
		h.logger.Warn("GET /users/{email}/places - Missing email")
		handlers.RespondBadRequest(w, msgMissingEmail)
		return
	}

	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /users/{email}/places - Missing actor")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.GetByOwner(r.Context(), email, actor)
	if err != nil {
		if errors.Is(err, places.ErrAccessDenied) {
			h.logger.Warn("GET /users/{email}/places - Access denied: email=%s, user=%s", email, actor.Email)
			handlers.RespondForbidden(w, msgForbidden)
			return
		}
		h.logger.Error("GET /users/{email}/places - Failed to get places: email=%s, error=%v", email, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /users/{email}/places - Places retrieved: email=%s, count=%d", email, len(result.Places))
	handlers.RespondJSON(w, http.StatusOK, result.Places)
}
