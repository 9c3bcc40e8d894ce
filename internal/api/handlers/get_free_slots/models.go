package get_free_slots

import (
	"time"

	"github.com/urbandepot/parking-service/internal/domain"
	getFreeSlots "github.com/urbandepot/parking-service/internal/usecase/get_free_slots"
)

// FreeSlotsResponse HTTP модель ответа со свободными окнами
type FreeSlotsResponse struct {
	PlaceID        string   `json:"placeId"`
	Date           string   `json:"date"`
	Availability   string   `json:"availability"`
	AvailableSlots []string `json:"availableSlots"`
}

// ToUseCaseRequest конвертирует параметры запроса в модель use case
// Пустая дата означает "сегодня"
func ToUseCaseRequest(placeID, dateStr string, loc *time.Location) (*getFreeSlots.Request, error) {
	req := &getFreeSlots.Request{PlaceID: placeID}
	if dateStr == "" {
		return req, nil
	}

	date, err := time.ParseInLocation(domain.DateFormat, dateStr, loc)
	if err != nil {
		return nil, err
	}
	req.Date = &date

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *getFreeSlots.Response) *FreeSlotsResponse {
	slots := resp.AvailableSlots
	if slots == nil {
		slots = []string{}
	}

	return &FreeSlotsResponse{
		PlaceID:        resp.PlaceID,
		Date:           resp.Date.Format(domain.DateFormat),
		Availability:   resp.Availability,
		AvailableSlots: slots,
	}
}
