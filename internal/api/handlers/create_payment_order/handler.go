package create_payment_order

import (
	"errors"
	"net/http"

	"github.com/urbandepot/parking-service/internal/api/handlers"
	"github.com/urbandepot/parking-service/internal/api/middleware"
	"github.com/urbandepot/parking-service/internal/service/payments"
	"github.com/urbandepot/parking-service/internal/service/payments/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnauthorized       = "требуется аутентификация"
	msgInvalidInput       = "укажите reservationId или положительную сумму"
	msgNotFound           = "бронирование не найдено"
	msgForbidden          = "доступ запрещен"
	msgNotPayable         = "бронирование не может быть оплачено"
	msgGateway            = "не удалось создать заказ в платежной системе"
)

type Handler struct {
	service PaymentService
	logger  Logger
}

func NewHandler(service PaymentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/payments/orders
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /payments/orders - Missing actor")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req models.CreateOrderRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /payments/orders - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.Actor = actor

	result, err := h.service.CreateOrder(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, payments.ErrInvalidInput):
			h.logger.Warn("POST /payments/orders - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, payments.ErrReservationNotFound):
			h.logger.Warn("POST /payments/orders - Reservation not found: user=%s", actor.Email)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, payments.ErrAccessDenied):
			h.logger.Warn("POST /payments/orders - Access denied: user=%s", actor.Email)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, payments.ErrReservationNotPayable):
			h.logger.Warn("POST /payments/orders - Reservation not payable: %v", err)
			handlers.RespondBadRequest(w, msgNotPayable)

		case errors.Is(err, payments.ErrGateway):
			h.logger.Error("POST /payments/orders - Gateway error: %v", err)
			handlers.RespondBadGateway(w, msgGateway)

		default:
			h.logger.Error("POST /payments/orders - Failed to create order: user=%s, error=%v", actor.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /payments/orders - Order created: order_id=%s, amount=%d, user=%s",
		result.OrderID, result.Amount, actor.Email)
	handlers.RespondJSON(w, http.StatusOK, result)
}
