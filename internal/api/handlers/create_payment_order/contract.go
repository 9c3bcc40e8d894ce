package create_payment_order

import (
	"context"

	"github.com/urbandepot/parking-service/internal/service/payments/models"
)

type PaymentService interface {
	CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.OrderResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
