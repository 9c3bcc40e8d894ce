package models

import (
	"time"

	"github.com/urbandepot/parking-service/internal/domain"
)

// Request модели

// RegisterPlaceRequest запрос на регистрацию площадки
type RegisterPlaceRequest struct {
	Actor            domain.Actor `json:"-"`
	Name             string       `json:"name"`
	Address          string       `json:"address"`
	OwnerName        string       `json:"ownerName"`
	OwnerEmail       string       `json:"ownerEmail"` // По умолчанию email пользователя
	ParkingNumber    *string      `json:"parkingNumber,omitempty"`
	Availability     string       `json:"availability"`       // "08:00 - 20:00"
	DateFrom         *string      `json:"dateFrom,omitempty"` // "2024-05-01"
	DateTo           *string      `json:"dateTo,omitempty"`   // "2024-05-31"
	Latitude         *float64     `json:"latitude,omitempty"`
	Longitude        *float64     `json:"longitude,omitempty"`
	Charge           float64      `json:"charge"`
	AccessType       string       `json:"accessType"` // public, private
	HasCameras       bool         `json:"hasCameras"`
	HasSecurityGuard bool         `json:"hasSecurityGuard"`
	GuardName        *string      `json:"guardName,omitempty"`
	GuardContact     *string      `json:"guardContact,omitempty"`
	Documents        Documents    `json:"documents"`
}

// Response модели

// Documents ссылки на документы площадки
type Documents struct {
	AadhaarCard        *string `json:"aadhaarCard,omitempty"`
	NOCLetter          *string `json:"nocLetter,omitempty"`
	BuildingPermission *string `json:"buildingPermission,omitempty"`
	PlacePicture       *string `json:"placePicture,omitempty"`
}

// TodayReservation занятый сегодня интервал площадки
type TodayReservation struct {
	ReservationID string `json:"reservationId"`
	CheckinTime   string `json:"checkinTime"`  // "10:00"
	CheckoutTime  string `json:"checkoutTime"` // "12:00", "24:00" если бронь продолжается завтра
}

// PlaceResponse ответ с данными площадки
type PlaceResponse struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Address          string     `json:"address"`
	OwnerName        string     `json:"ownerName"`
	OwnerEmail       string     `json:"ownerEmail"`
	ParkingNumber    *string    `json:"parkingNumber,omitempty"`
	Availability     string     `json:"availability"`
	DateFrom         *string    `json:"dateFrom,omitempty"`
	DateTo           *string    `json:"dateTo,omitempty"`
	Latitude         *float64   `json:"latitude,omitempty"`
	Longitude        *float64   `json:"longitude,omitempty"`
	Charge           float64    `json:"charge"`
	AccessType       string     `json:"accessType"`
	HasCameras       bool       `json:"hasCameras"`
	HasSecurityGuard bool       `json:"hasSecurityGuard"`
	GuardName        *string    `json:"guardName,omitempty"`
	GuardContact     *string    `json:"guardContact,omitempty"`
	Documents        Documents  `json:"documents"`
	Verified         bool       `json:"verified"`
	VerifiedAt       *time.Time `json:"verifiedAt,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`

	// Заполняется только в публичном списке
	Reservations []TodayReservation `json:"reservations,omitempty"`
}

// PlaceListResponse ответ со списком площадок
type PlaceListResponse struct {
	Places []PlaceResponse `json:"places"`
}

// Методы конвертации

// FromDomainPlace конвертирует domain модель в DTO
func FromDomainPlace(p *domain.Place) *PlaceResponse {
	if p == nil {
		return nil
	}

	return &PlaceResponse{
		ID:               p.ID,
		Name:             p.Name,
		Address:          p.Address,
		OwnerName:        p.OwnerName,
		OwnerEmail:       p.OwnerEmail,
		ParkingNumber:    p.ParkingNumber,
		Availability:     p.Availability,
		DateFrom:         formatDate(p.DateFrom),
		DateTo:           formatDate(p.DateTo),
		Latitude:         p.Latitude,
		Longitude:        p.Longitude,
		Charge:           p.Charge,
		AccessType:       string(p.AccessType),
		HasCameras:       p.HasCameras,
		HasSecurityGuard: p.HasSecurityGuard,
		GuardName:        p.GuardName,
		GuardContact:     p.GuardContact,
		Documents: Documents{
			AadhaarCard:        p.Documents.AadhaarCard,
			NOCLetter:          p.Documents.NOCLetter,
			BuildingPermission: p.Documents.BuildingPermission,
			PlacePicture:       p.Documents.PlacePicture,
		},
		Verified:   p.Verified,
		VerifiedAt: p.VerifiedAt,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

// FromDomainPlaceList конвертирует список domain моделей в DTO
func FromDomainPlaceList(places []*domain.Place) *PlaceListResponse {
	resp := &PlaceListResponse{Places: make([]PlaceResponse, 0, len(places))}
	for _, p := range places {
		resp.Places = append(resp.Places, *FromDomainPlace(p))
	}
	return resp
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(domain.DateFormat)
	return &s
}
