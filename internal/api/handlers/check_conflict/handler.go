package check_conflict

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/urbandepot/parking-service/internal/api/handlers"
	checkConflict "github.com/urbandepot/parking-service/internal/usecase/check_conflict"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingPlaceID     = "ID площадки обязателен"
	msgPlaceNotFound      = "площадка не найдена"
	msgInvalidInterval    = "время выезда должно быть позже времени заезда"
	msgInvalidInput       = "некорректные дата или время, ожидается YYYY-MM-DD и HH:MM"
)

type Handler struct {
	useCase CheckConflictUseCase
	logger  Logger
}

func NewHandler(useCase CheckConflictUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/places/{placeId}/conflicts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	placeID := mux.Vars(r)["placeId"]
	if placeID == "" {
		h.logger.Warn("POST /places/{id}/conflicts - Missing place ID")
		handlers.RespondBadRequest(w, msgMissingPlaceID)
		return
	}

	var req CheckConflictRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /places/{id}/conflicts - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(placeID))
	if err != nil {
		switch {
		case errors.Is(err, checkConflict.ErrPlaceNotFound):
			h.logger.Warn("POST /places/{id}/conflicts - Place not found: place_id=%s", placeID)
			handlers.RespondNotFound(w, msgPlaceNotFound)

		case errors.Is(err, checkConflict.ErrInvalidInterval):
			h.logger.Warn("POST /places/{id}/conflicts - Invalid interval: place_id=%s", placeID)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, checkConflict.ErrInvalidInput):
			h.logger.Warn("POST /places/{id}/conflicts - Invalid input: place_id=%s, error=%v", placeID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /places/{id}/conflicts - Failed to check conflict: place_id=%s, error=%v", placeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /places/{id}/conflicts - Conflict checked: place_id=%s, conflict=%t", placeID, result.Conflict)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
