package events

import (
	"time"

	"github.com/urbandepot/parking-service/internal/domain"
)

// Типы событий; имя топика = <prefix>.<type>
const (
	TypeReservationCreated   = "reservation.created"
	TypeReservationCancelled = "reservation.cancelled"
	TypePlaceVerified        = "place.verified"
)

// Event доменное событие
// Key определяет партицию: события одной площадки попадают в одну партицию по порядку
type Event struct {
	Type       string
	Key        string
	OccurredAt time.Time
	Payload    interface{}
}

// ReservationPayload данные событий бронирования
type ReservationPayload struct {
	ReservationID string    `json:"reservationId"`
	PlaceID       string    `json:"placeId"`
	UserEmail     string    `json:"userEmail"`
	VehicleType   string    `json:"vehicleType"`
	Checkin       time.Time `json:"checkin"`
	Checkout      time.Time `json:"checkout"`
	TotalAmount   float64   `json:"totalAmount"`
	Status        string    `json:"status"`
}

// PlacePayload данные событий площадки
type PlacePayload struct {
	PlaceID    string `json:"placeId"`
	Name       string `json:"name"`
	OwnerEmail string `json:"ownerEmail"`
}

// ReservationCreated событие создания бронирования
func ReservationCreated(r *domain.Reservation, at time.Time) Event {
	return reservationEvent(TypeReservationCreated, r, at)
}

// ReservationCancelled событие отмены бронирования
func ReservationCancelled(r *domain.Reservation, at time.Time) Event {
	return reservationEvent(TypeReservationCancelled, r, at)
}

// PlaceVerified событие проверки площадки администратором
func PlaceVerified(p *domain.Place, at time.Time) Event {
	return Event{
		Type:       TypePlaceVerified,
		Key:        p.ID,
		OccurredAt: at,
		Payload: PlacePayload{
			PlaceID:    p.ID,
			Name:       p.Name,
			OwnerEmail: p.OwnerEmail,
		},
	}
}

func reservationEvent(eventType string, r *domain.Reservation, at time.Time) Event {
	return Event{
		Type:       eventType,
		Key:        r.PlaceID,
		OccurredAt: at,
		Payload: ReservationPayload{
			ReservationID: r.ID,
			PlaceID:       r.PlaceID,
			UserEmail:     r.UserEmail,
			VehicleType:   string(r.VehicleType),
			Checkin:       r.Checkin,
			Checkout:      r.Checkout,
			TotalAmount:   r.TotalAmount,
			Status:        string(r.Status),
		},
	}
}
