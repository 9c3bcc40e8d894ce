package get_tariff

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/urbandepot/parking-service/internal/api/handlers"
	"github.com/urbandepot/parking-service/internal/domain"
	"github.com/urbandepot/parking-service/internal/service/tariffs"
)

const (
	msgMissingPlaceID   = "ID площадки обязателен"
	msgInvalidVehicle   = "некорректный тип транспорта"
	msgPlaceNotFound    = "площадка не найдена"
	defaultVehicleQuery = string(domain.VehicleCar)
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

// Handle GET /api/v1/places/{placeId}/tariff
// Query params: vehicleType (опционально, по умолчанию car)
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	placeID := mux.Vars(r)["placeId"]
	if placeID == "" {
		h.logger.Warn("GET /places/{id}/tariff - Missing place ID")
		handlers.RespondBadRequest(w, msgMissingPlaceID)
		return
	}

	vehicleType := r.URL.Query().Get("vehicleType")
	if vehicleType == "" {
		vehicleType = defaultVehicleQuery
	}

	// Тариф ищется иерархически, при отсутствии настроек возвращаются встроенные значения
	result, err := h.service.GetEffective(r.Context(), placeID, vehicleType)
	if err != nil {
		switch {
		case errors.Is(err, tariffs.ErrInvalidInput):
			h.logger.Warn("GET /places/{id}/tariff - Invalid vehicle type: %q", vehicleType)
			handlers.RespondBadRequest(w, msgInvalidVehicle)

		case errors.Is(err, tariffs.ErrPlaceNotFound):
			h.logger.Warn("GET /places/{id}/tariff - Place not found: place_id=%s", placeID)
			handlers.RespondNotFound(w, msgPlaceNotFound)

		default:
			h.logger.Error("GET /places/{id}/tariff - Failed to get tariff: place_id=%s, error=%v", placeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /places/{id}/tariff - Tariff retrieved: place_id=%s, vehicle=%s, source=%s",
		placeID, result.VehicleType, result.Source)
	handlers.RespondJSON(w, http.StatusOK, result)
}
