package create_reservation

import (
	"time"

	createReservation "github.com/urbandepot/parking-service/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP модель запроса
// Email арендатора берется из аутентификации, а не из тела
type CreateReservationRequest struct {
	PlaceID         string  `json:"placeId"`
	FullName        string  `json:"fullName"`
	Phone           string  `json:"phone"`
	VehicleType     string  `json:"vehicleType"`
	LicensePlate    string  `json:"licensePlate"`
	LicensePhotoURL *string `json:"licensePhotoUrl,omitempty"`
	PlatePhotoURL   *string `json:"platePhotoUrl,omitempty"`
	CheckinDate     string  `json:"checkinDate"`  // "2024-05-10"
	CheckinTime     string  `json:"checkinTime"`  // "10:00"
	CheckoutDate    string  `json:"checkoutDate"` // "2024-05-10"
	CheckoutTime    string  `json:"checkoutTime"` // "12:00"
}

// ReservationResponse HTTP модель ответа
type ReservationResponse struct {
	ID           string  `json:"id"`
	PlaceID      string  `json:"placeId"`
	UserEmail    string  `json:"userEmail"`
	FullName     string  `json:"fullName"`
	Phone        string  `json:"phone"`
	VehicleType  string  `json:"vehicleType"`
	LicensePlate string  `json:"licensePlate"`
	Checkin      string  `json:"checkin"`
	Checkout     string  `json:"checkout"`
	BaseAmount   float64 `json:"baseAmount"`
	PlatformFee  float64 `json:"platformFee"`
	TotalAmount  float64 `json:"totalAmount"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(userEmail string) *createReservation.Request {
	return &createReservation.Request{
		PlaceID:         r.PlaceID,
		UserEmail:       userEmail,
		FullName:        r.FullName,
		Phone:           r.Phone,
		VehicleType:     r.VehicleType,
		LicensePlate:    r.LicensePlate,
		LicensePhotoURL: r.LicensePhotoURL,
		PlatePhotoURL:   r.PlatePhotoURL,
		CheckinDate:     r.CheckinDate,
		CheckinTime:     r.CheckinTime,
		CheckoutDate:    r.CheckoutDate,
		CheckoutTime:    r.CheckoutTime,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:           resp.ID,
		PlaceID:      resp.PlaceID,
		UserEmail:    resp.UserEmail,
		FullName:     resp.FullName,
		Phone:        resp.Phone,
		VehicleType:  resp.VehicleType,
		LicensePlate: resp.LicensePlate,
		Checkin:      resp.Checkin.Format(time.RFC3339),
		Checkout:     resp.Checkout.Format(time.RFC3339),
		BaseAmount:   resp.BaseAmount,
		PlatformFee:  resp.PlatformFee,
		TotalAmount:  resp.TotalAmount,
		Status:       resp.Status,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
	}
}
