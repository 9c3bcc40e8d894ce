package verify_payment

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
	msgMissingFields      = "Missing fields"
	msgNotFound           = "бронирование не найдено"
	msgAccessDenied       = "нет доступа к бронированию"
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

// Handle POST /api/v1/payments/verify
// При несовпадении подписи возвращается 400 {"verified": false}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /payments/verify - Missing actor")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req models.VerifyPaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /payments/verify - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.Actor = actor

	result, err := h.service.Verify(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, payments.ErrInvalidInput):
			h.logger.Warn("POST /payments/verify - Missing fields: user=%s", actor.Email)
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, payments.ErrInvalidSignature), errors.Is(err, payments.ErrOrderMismatch):
			h.logger.Warn("POST /payments/verify - Verification failed: order_id=%s, error=%v", req.OrderID, err)
			handlers.RespondJSON(w, http.StatusBadRequest, &models.VerifyPaymentResponse{Verified: false})

		case errors.Is(err, payments.ErrAccessDenied):
			h.logger.Warn("POST /payments/verify - Access denied: user=%s, order_id=%s", actor.Email, req.OrderID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, payments.ErrReservationNotFound):
			h.logger.Warn("POST /payments/verify - Reservation not found: order_id=%s", req.OrderID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("POST /payments/verify - Failed to verify payment: order_id=%s, error=%v", req.OrderID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /payments/verify - Payment verified: order_id=%s, payment_id=%s", req.OrderID, req.PaymentID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
