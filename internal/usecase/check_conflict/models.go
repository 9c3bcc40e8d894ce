package check_conflict

// Request модель запроса проверки пересечения
type Request struct {
	PlaceID      string
	CheckinDate  string
	CheckinTime  string
	CheckoutDate string
	CheckoutTime string
}

// Response результат проверки
// ReservationID заполняется, если найдено пересекающееся бронирование
type Response struct {
	Conflict      bool
	ReservationID *string
}
