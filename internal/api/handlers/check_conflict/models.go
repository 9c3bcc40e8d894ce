package check_conflict

import (
	checkConflict "github.com/urbandepot/parking-service/internal/usecase/check_conflict"
)

// CheckConflictRequest HTTP модель запроса
type CheckConflictRequest struct {
	CheckinDate  string `json:"checkinDate"`  // "2024-05-10"
	CheckinTime  string `json:"checkinTime"`  // "10:00"
	CheckoutDate string `json:"checkoutDate"` // "2024-05-10"
	CheckoutTime string `json:"checkoutTime"` // "12:00"
}

// ConflictResponse HTTP модель ответа
type ConflictResponse struct {
	Conflict      bool    `json:"conflict"`
	ReservationID *string `json:"reservationId,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckConflictRequest) ToUseCaseRequest(placeID string) *checkConflict.Request {
	return &checkConflict.Request{
		PlaceID:      placeID,
		CheckinDate:  r.CheckinDate,
		CheckinTime:  r.CheckinTime,
		CheckoutDate: r.CheckoutDate,
		CheckoutTime: r.CheckoutTime,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *checkConflict.Response) *ConflictResponse {
	return &ConflictResponse{
		Conflict:      resp.Conflict,
		ReservationID: resp.ReservationID,
	}
}
