package upsert_tariff

import (
	"errors"
	"net/http"

	"github.com/urbandepot/parking-service/internal/api/handlers"
	"github.com/urbandepot/parking-service/internal/api/middleware"
	"github.com/urbandepot/parking-service/internal/service/tariffs"
	"github.com/urbandepot/parking-service/internal/service/tariffs/models"
	"github.com/urbandepot/parking-service/pkg/ptr"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnauthorized       = "требуется аутентификация"
	msgPlaceNotFound      = "площадка не найдена"
	msgForbidden          = "доступ запрещен"
	msgInvalidData        = "некорректные данные тарифа"
)

type Handler struct {
	service TariffService
	logger  Logger
}

func NewHandler(service TariffService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/admin/tariffs
// Без placeId обновляется глобальный тариф
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		h.logger.Warn("PUT /admin/tariffs - Missing actor")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req models.UpsertTariffRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/tariffs - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.Actor = actor

	result, err := h.service.Upsert(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, tariffs.ErrAccessDenied):
			h.logger.Warn("PUT /admin/tariffs - Access denied: user=%s", actor.Email)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, tariffs.ErrPlaceNotFound):
			h.logger.Warn("PUT /admin/tariffs - Place not found: place_id=%s", ptr.Value(req.PlaceID))
			handlers.RespondNotFound(w, msgPlaceNotFound)

		case errors.Is(err, tariffs.ErrInvalidInput):
			h.logger.Warn("PUT /admin/tariffs - Invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PUT /admin/tariffs - Failed to upsert tariff: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/tariffs - Tariff saved: vehicle=%s, source=%s, admin=%s",
		result.VehicleType, result.Source, actor.Email)
	handlers.RespondJSON(w, http.StatusOK, result)
}
