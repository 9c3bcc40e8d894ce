package models

import "github.com/urbandepot/parking-service/internal/domain"

// CreateOrderRequest запрос на создание заказа
// Указывается либо ReservationID (сумма берется из бронирования), либо Amount в рупиях
type CreateOrderRequest struct {
	Actor         domain.Actor `json:"-"`
	ReservationID *string      `json:"reservationId,omitempty"`
	Amount        *float64     `json:"amount,omitempty"`
}

// OrderResponse созданный заказ
type OrderResponse struct {
	OrderID       string  `json:"id"`
	Amount        int64   `json:"amount"` // пайсы
	Currency      string  `json:"currency"`
	Receipt       string  `json:"receipt"`
	Status        string  `json:"status"`
	KeyID         string  `json:"keyId"`
	ReservationID *string `json:"reservationId,omitempty"`
}

// VerifyPaymentRequest данные, полученные клиентом от шлюза после оплаты
type VerifyPaymentRequest struct {
	Actor         domain.Actor `json:"-"`
	OrderID       string       `json:"razorpay_order_id"`
	PaymentID     string       `json:"razorpay_payment_id"`
	Signature     string       `json:"razorpay_signature"`
	ReservationID *string      `json:"reservationId,omitempty"`
}

// VerifyPaymentResponse результат проверки
type VerifyPaymentResponse struct {
	Verified      bool    `json:"verified"`
	ReservationID *string `json:"reservationId,omitempty"`
}
