package domain

import (
	"strings"
	"time"

	"github.com/urbandepot/parking-service/internal/availability"
)

// VehicleType тип транспортного средства
type VehicleType string

const (
	VehicleCar     VehicleType = "car"
	VehicleBike    VehicleType = "bike"
	VehicleScooter VehicleType = "scooter"
	VehicleBicycle VehicleType = "bicycle"
)

// ParseVehicleType нормализует тип транспорта; неизвестные значения отклоняются
func ParseVehicleType(s string) (VehicleType, bool) {
	vt := VehicleType(strings.ToLower(strings.TrimSpace(s)))
	_, ok := DefaultBaseAmounts[vt]
	return vt, ok
}

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusActive    ReservationStatus = "active"
	StatusCancelled ReservationStatus = "cancelled"
)

// Reservation represents a booked interval at a place
type Reservation struct {
	ID        string // UUID
	PlaceID   string
	UserEmail string
	FullName  string
	Phone     string

	VehicleType     VehicleType
	LicensePlate    string
	LicensePhotoURL *string
	PlatePhotoURL   *string

	// Абсолютные моменты заезда/выезда, [Checkin, Checkout)
	Checkin  time.Time
	Checkout time.Time

	BaseAmount  float64
	PlatformFee float64
	TotalAmount float64

	Status         ReservationStatus
	PaymentOrderID *string
	PaymentID      *string
	PaidAt         *time.Time
	CancelledAt    *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation still occupies its slot
func (r *Reservation) IsActive() bool {
	return r.Status == StatusActive
}

// CanBeCancelled returns true if the reservation can be cancelled
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusActive
}

// IsPaid returns true if a verified payment is attached
func (r *Reservation) IsPaid() bool {
	return r.PaidAt != nil
}

// Interval returns the occupied interval
func (r *Reservation) Interval() (availability.Interval[time.Time], error) {
	return availability.NewInterval(r.Checkin, r.Checkout)
}

// ReservationFilter фильтр для выборки бронирований
type ReservationFilter struct {
	PlaceIDs  []string   // Фильтр по площадкам (пустой - все)
	UserEmail *string    // Фильтр по пользователю
	From      *time.Time // Бронирования, пересекающие [From, To)
	To        *time.Time
	// IncludeCancelled включать ли отмененные бронирования
	IncludeCancelled bool
}
