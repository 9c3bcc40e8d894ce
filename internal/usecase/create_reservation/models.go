package create_reservation

import "time"

// Request модель запроса на создание бронирования
// Дата и время интерпретируются в часовом поясе сервиса
type Request struct {
	PlaceID         string  // ID площадки
	UserEmail       string  // Email арендатора (из аутентификации)
	FullName        string  // Имя арендатора
	Phone           string  // Телефон
	VehicleType     string  // car, bike, scooter, bicycle
	LicensePlate    string  // Госномер
	LicensePhotoURL *string // Ссылка на фото прав (опционально)
	PlatePhotoURL   *string // Ссылка на фото номера (опционально)
	CheckinDate     string  // "2024-05-10"
	CheckinTime     string  // "10:00"
	CheckoutDate    string  // "2024-05-10"
	CheckoutTime    string  // "12:00"
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID           string
	PlaceID      string
	UserEmail    string
	FullName     string
	Phone        string
	VehicleType  string
	LicensePlate string
	Checkin      time.Time
	Checkout     time.Time
	BaseAmount   float64
	PlatformFee  float64
	TotalAmount  float64
	Status       string
	CreatedAt    time.Time
}
