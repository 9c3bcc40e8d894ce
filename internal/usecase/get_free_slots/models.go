package get_free_slots

import "time"

// Request модель запроса свободных окон площадки
type Request struct {
	PlaceID string     // ID площадки
	Date    *time.Time // Календарный день (nil = сегодня в часовом поясе сервиса)
}

// Response модель ответа со свободными окнами
type Response struct {
	PlaceID        string    // ID площадки
	Date           time.Time // День, для которого считались окна
	Availability   string    // Окно работы площадки "HH:MM - HH:MM"
	AvailableSlots []string  // Свободные окна "HH:MM - HH:MM" в порядке возрастания
}
