package payments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/urbandepot/parking-service/internal/domain"
	reservationRepo "github.com/urbandepot/parking-service/internal/infra/storage/reservation"
	"github.com/urbandepot/parking-service/internal/integrations/razorpay"
	"github.com/urbandepot/parking-service/internal/service/payments/models"
)

const receiptPrefix = "receipt_order_"

// Service сервис оплаты бронирований через платежный шлюз
type Service struct {
	reservationRepo ReservationRepository
	gateway         GatewayClient
	keyID           string
	keySecret       string
	currency        string
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса оплаты
func NewService(
	reservationRepo ReservationRepository,
	gateway GatewayClient,
	keyID, keySecret, currency string,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		gateway:         gateway,
		keyID:           keyID,
		keySecret:       keySecret,
		currency:        currency,
		timeProvider:    realTimeProvider{},
		logger:          logger,
	}
}

// CreateOrder создает заказ в платежном шлюзе
func (s *Service) CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.OrderResponse, error) {
	s.logger.Info("CreateOrder: reservation=%v, amount=%v by user=%s", req.ReservationID, req.Amount, req.Actor.Email)

	var (
		amount      int64
		reservation *domain.Reservation
		notes       map[string]string
	)

	switch {
	case req.ReservationID != nil:
		r, err := s.getReservation(ctx, "CreateOrder", *req.ReservationID)
		if err != nil {
			return nil, err
		}
		if !req.Actor.CanManage(r.UserEmail) {
			s.logger.Warn("CreateOrder: user=%s cannot pay reservation id=%s", req.Actor.Email, r.ID)
			return nil, ErrAccessDenied
		}
		if !r.IsActive() || r.IsPaid() {
			s.logger.Warn("CreateOrder: reservation id=%s is not payable, status=%s, paid=%t", r.ID, r.Status, r.IsPaid())
			return nil, ErrReservationNotPayable
		}
		reservation = r
		amount = domain.ToMinorUnits(r.TotalAmount)
		notes = map[string]string{"reservationId": r.ID, "placeId": r.PlaceID}
	case req.Amount != nil:
		amount = domain.ToMinorUnits(*req.Amount)
	}

	if amount <= 0 {
		s.logger.Warn("CreateOrder: invalid amount %d", amount)
		return nil, fmt.Errorf("%w: reservationId or a positive amount is required", ErrInvalidInput)
	}

	order, err := s.gateway.CreateOrder(ctx, razorpay.OrderRequest{
		Amount:   amount,
		Currency: s.currency,
		Receipt:  fmt.Sprintf("%s%d", receiptPrefix, s.timeProvider.Now().UnixMilli()),
		Notes:    notes,
	})
	if err != nil {
		s.logger.Error("CreateOrder: gateway error: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrGateway, err)
	}

	resp := &models.OrderResponse{
		OrderID:  order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
		Receipt:  order.Receipt,
		Status:   order.Status,
		KeyID:    s.keyID,
	}

	if reservation != nil {
		if err := s.reservationRepo.SetPaymentOrder(ctx, reservation.ID, order.ID); err != nil {
			s.logger.Error("CreateOrder: failed to attach order=%s to reservation id=%s: %v", order.ID, reservation.ID, err)
			return nil, fmt.Errorf("%w: CreateOrder - repository error: %v", ErrInternal, err)
		}
		id := reservation.ID
		resp.ReservationID = &id
	}

	s.logger.Info("CreateOrder: successfully created order=%s amount=%d", order.ID, order.Amount)
	return resp, nil
}

// Verify проверяет подпись платежа и отмечает бронирование оплаченным
func (s *Service) Verify(ctx context.Context, req *models.VerifyPaymentRequest) (*models.VerifyPaymentResponse, error) {
	s.logger.Info("Verify: order=%s, payment=%s, reservation=%v", req.OrderID, req.PaymentID, req.ReservationID)

	if strings.TrimSpace(req.OrderID) == "" || strings.TrimSpace(req.PaymentID) == "" || strings.TrimSpace(req.Signature) == "" {
		s.logger.Warn("Verify: missing fields")
		return nil, fmt.Errorf("%w: missing fields", ErrInvalidInput)
	}

	if !razorpay.VerifySignature(req.OrderID, req.PaymentID, req.Signature, s.keySecret) {
		s.logger.Warn("Verify: signature mismatch for order=%s", req.OrderID)
		return nil, ErrInvalidSignature
	}

	resp := &models.VerifyPaymentResponse{Verified: true}
	if req.ReservationID == nil {
		return resp, nil
	}

	reservation, err := s.getReservation(ctx, "Verify", *req.ReservationID)
	if err != nil {
		return nil, err
	}

	if !req.Actor.CanManage(reservation.UserEmail) {
		s.logger.Warn("Verify: user=%s cannot pay reservation id=%s", req.Actor.Email, reservation.ID)
		return nil, ErrAccessDenied
	}

	// Оплачивается только заказ, созданный для этого бронирования
	if reservation.PaymentOrderID == nil || *reservation.PaymentOrderID != req.OrderID {
		s.logger.Warn("Verify: order=%s does not belong to reservation id=%s", req.OrderID, reservation.ID)
		return nil, ErrOrderMismatch
	}

	if err := s.reservationRepo.MarkPaid(ctx, reservation.ID, req.OrderID, req.PaymentID); err != nil {
		s.logger.Error("Verify: failed to mark reservation id=%s paid: %v", reservation.ID, err)
		return nil, fmt.Errorf("%w: Verify - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Verify: reservation id=%s paid with payment=%s", reservation.ID, req.PaymentID)
	id := reservation.ID
	resp.ReservationID = &id
	return resp, nil
}

func (s *Service) getReservation(ctx context.Context, op, id string) (*domain.Reservation, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("%s: reservation id=%s not found", op, id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("%s: repository error for reservation id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return reservation, nil
}
