package models

import (
	"time"

	"github.com/urbandepot/parking-service/internal/domain"
)

// Request модели

// GetPlaceReservationsRequest запрос бронирований площадки
type GetPlaceReservationsRequest struct {
	PlaceID          string
	Actor            domain.Actor
	Date             *time.Time // Только бронирования, пересекающие этот день (опционально)
	IncludeCancelled bool
}

// GetUserReservationsRequest запрос бронирований пользователя
type GetUserReservationsRequest struct {
	UserEmail        string
	Actor            domain.Actor
	IncludeCancelled bool
}

// Response модели

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID              string  `json:"id"`
	PlaceID         string  `json:"placeId"`
	UserEmail       string  `json:"userEmail"`
	FullName        string  `json:"fullName"`
	Phone           string  `json:"phone"`
	VehicleType     string  `json:"vehicleType"`
	LicensePlate    string  `json:"licensePlate"`
	LicensePhotoURL *string `json:"licensePhotoUrl,omitempty"`
	PlatePhotoURL   *string `json:"platePhotoUrl,omitempty"`

	CheckinDate  string `json:"checkinDate"`  // "2024-05-10"
	CheckinTime  string `json:"checkinTime"`  // "10:00"
	CheckoutDate string `json:"checkoutDate"` // "2024-05-10"
	CheckoutTime string `json:"checkoutTime"` // "12:00"

	BaseAmount  float64 `json:"baseAmount"`
	PlatformFee float64 `json:"platformFee"`
	TotalAmount float64 `json:"totalAmount"`
	Status      string  `json:"status"`

	PaymentOrderID *string    `json:"paymentOrderId,omitempty"`
	PaymentID      *string    `json:"paymentId,omitempty"`
	PaidAt         *time.Time `json:"paidAt,omitempty"`
	CancelledAt    *time.Time `json:"cancelledAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// DayGroup бронирования, созданные в один день, и сумма комиссий платформы за день
type DayGroup struct {
	Date             string                `json:"date"`
	TotalPlatformFee float64               `json:"totalPlatformFee"`
	Reservations     []ReservationResponse `json:"reservations"`
}

// GroupedResponse ответ со сгруппированными бронированиями, последние дни первыми
type GroupedResponse struct {
	Days []DayGroup `json:"days"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
// Время заезда и выезда выводится в часовом поясе loc
func FromDomainReservation(r *domain.Reservation, loc *time.Location) *ReservationResponse {
	if r == nil {
		return nil
	}

	checkin := r.Checkin.In(loc)
	checkout := r.Checkout.In(loc)

	return &ReservationResponse{
		ID:              r.ID,
		PlaceID:         r.PlaceID,
		UserEmail:       r.UserEmail,
		FullName:        r.FullName,
		Phone:           r.Phone,
		VehicleType:     string(r.VehicleType),
		LicensePlate:    r.LicensePlate,
		LicensePhotoURL: r.LicensePhotoURL,
		PlatePhotoURL:   r.PlatePhotoURL,
		CheckinDate:     checkin.Format(domain.DateFormat),
		CheckinTime:     checkin.Format(domain.TimeFormat),
		CheckoutDate:    checkout.Format(domain.DateFormat),
		CheckoutTime:    checkout.Format(domain.TimeFormat),
		BaseAmount:      r.BaseAmount,
		PlatformFee:     r.PlatformFee,
		TotalAmount:     r.TotalAmount,
		Status:          string(r.Status),
		PaymentOrderID:  r.PaymentOrderID,
		PaymentID:       r.PaymentID,
		PaidAt:          r.PaidAt,
		CancelledAt:     r.CancelledAt,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation, loc *time.Location) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(reservations)),
	}
	for _, r := range reservations {
		resp.Reservations = append(resp.Reservations, *FromDomainReservation(r, loc))
	}
	return resp
}
