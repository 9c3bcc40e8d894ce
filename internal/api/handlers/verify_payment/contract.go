package verify_payment

import (
	"context"

	"github.com/urbandepot/parking-service/internal/service/payments/models"
)

type PaymentService interface {
	Verify(ctx context.Context, req *models.VerifyPaymentRequest) (*models.VerifyPaymentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
