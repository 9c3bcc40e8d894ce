package create_reservation

import (
	"errors"
	"net/http"

	"github.com/urbandepot/parking-service/internal/api/handlers"
	"github.com/urbandepot/parking-service/internal/api/middleware"
	createReservation "github.com/urbandepot/parking-service/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgUnauthorized        = "требуется аутентификация"
	msgSlotAlreadyBooked   = "выбранное время уже забронировано"
	msgPlaceNotFound       = "площадка не найдена"
	msgPlaceNotVerified    = "площадка еще не проверена"
	msgOutsideListing      = "даты бронирования вне периода сдачи площадки"
	msgOutsideHours        = "бронирование выходит за часы работы площадки"
	msgInvalidAvailability = "некорректное окно работы площадки"
	msgInvalidInterval     = "время выезда должно быть позже времени заезда"
	msgCheckinInPast       = "нельзя забронировать прошедшее время"
	msgInvalidInput        = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations - Missing actor")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(actor.Email))
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrSlotAlreadyBooked):
			h.logger.Warn("POST /reservations - Slot already booked: user=%s, place_id=%s", actor.Email, req.PlaceID)
			handlers.RespondConflict(w, msgSlotAlreadyBooked)

		case errors.Is(err, createReservation.ErrPlaceNotFound):
			h.logger.Warn("POST /reservations - Place not found: place_id=%s", req.PlaceID)
			handlers.RespondNotFound(w, msgPlaceNotFound)

		case errors.Is(err, createReservation.ErrPlaceNotVerified):
			h.logger.Warn("POST /reservations - Place not verified: place_id=%s", req.PlaceID)
			handlers.RespondBadRequest(w, msgPlaceNotVerified)

		case errors.Is(err, createReservation.ErrOutsideListingPeriod):
			h.logger.Warn("POST /reservations - Outside listing period: place_id=%s", req.PlaceID)
			handlers.RespondBadRequest(w, msgOutsideListing)

		case errors.Is(err, createReservation.ErrOutsideOpeningHours):
			h.logger.Warn("POST /reservations - Outside opening hours: place_id=%s", req.PlaceID)
			handlers.RespondBadRequest(w, msgOutsideHours)

		case errors.Is(err, createReservation.ErrInvalidAvailability):
			h.logger.Warn("POST /reservations - Invalid place availability: place_id=%s, error=%v", req.PlaceID, err)
			handlers.RespondBadRequest(w, msgInvalidAvailability)

		case errors.Is(err, createReservation.ErrInvalidInterval):
			h.logger.Warn("POST /reservations - Invalid interval: user=%s", actor.Email)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, createReservation.ErrCheckinInPast):
			h.logger.Warn("POST /reservations - Checkin in the past: user=%s", actor.Email)
			handlers.RespondBadRequest(w, msgCheckinInPast)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: user=%s, error=%v", actor.Email, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: user=%s, place_id=%s, error=%v",
				actor.Email, req.PlaceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: id=%s, place_id=%s, user=%s",
		result.ID, result.PlaceID, result.UserEmail)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
