package payments

import (
	"context"
	"time"

	"github.com/urbandepot/parking-service/internal/domain"
	"github.com/urbandepot/parking-service/internal/integrations/razorpay"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	SetPaymentOrder(ctx context.Context, id, orderID string) error
	MarkPaid(ctx context.Context, id, orderID, paymentID string) error
}

// GatewayClient интерфейс клиента платежного шлюза
type GatewayClient interface {
	CreateOrder(ctx context.Context, order razorpay.OrderRequest) (*razorpay.Order, error)
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time { return time.Now() }
