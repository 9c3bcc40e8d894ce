package get_free_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/urbandepot/parking-service/internal/api/handlers"
	getFreeSlots "github.com/urbandepot/parking-service/internal/usecase/get_free_slots"
)

const (
	msgMissingPlaceID      = "ID площадки обязателен"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgPlaceNotFound       = "площадка не найдена"
	msgInvalidAvailability = "некорректное окно работы площадки"
	msgInvalidInput        = "некорректные параметры запроса"
)

type Handler struct {
	useCase  GetFreeSlotsUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase GetFreeSlotsUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/places/{placeId}/free-slots
// Query params: date (optional, YYYY-MM-DD, по умолчанию сегодня)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	placeID := mux.Vars(r)["placeId"]
	if placeID == "" {
		h.logger.Warn("GET /places/{id}/free-slots - Missing place ID")
		handlers.RespondBadRequest(w, msgMissingPlaceID)
		return
	}

	useCaseReq, err := ToUseCaseRequest(placeID, r.URL.Query().Get("date"), h.location)
	if err != nil {
		h.logger.Warn("GET /places/{id}/free-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getFreeSlots.ErrPlaceNotFound):
			h.logger.Warn("GET /places/{id}/free-slots - Place not found: place_id=%s", placeID)
			handlers.RespondNotFound(w, msgPlaceNotFound)

		case errors.Is(err, getFreeSlots.ErrInvalidAvailability):
			h.logger.Warn("GET /places/{id}/free-slots - Invalid availability: place_id=%s, error=%v", placeID, err)
			handlers.RespondBadRequest(w, msgInvalidAvailability)

		case errors.Is(err, getFreeSlots.ErrInvalidInput):
			h.logger.Warn("GET /places/{id}/free-slots - Invalid input: place_id=%s, error=%v", placeID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /places/{id}/free-slots - Failed to get free slots: place_id=%s, error=%v", placeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /places/{id}/free-slots - Free slots retrieved: place_id=%s, slots_count=%d",
		placeID, len(result.AvailableSlots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
