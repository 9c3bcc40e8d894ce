package get_free_slots

import (
	"time"

	"github.com/urbandepot/parking-service/internal/availability"
	"github.com/urbandepot/parking-service/internal/domain"
)

// dayBounds возвращает [начало дня, начало следующего дня) в часовом поясе loc
func dayBounds(date time.Time, loc *time.Location) (time.Time, time.Time) {
	y, m, d := date.In(loc).Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}

// clipToDay обрезает бронирования до календарного дня и переводит их во время суток
// Бронирования, не пересекающие день, отбрасываются
func clipToDay(reservations []*domain.Reservation, dayStart, dayEnd time.Time) availability.ReservationSet[availability.Clock] {
	items := make([]availability.Reservation[availability.Clock], 0, len(reservations))

	for _, r := range reservations {
		if !r.IsActive() {
			continue
		}

		item, err := availability.NewReservation(r.ID, clockAt(dayStart, dayEnd, r.Checkin), clockAt(dayStart, dayEnd, r.Checkout))
		if err != nil {
			// Пустое пересечение с днем
			continue
		}
		items = append(items, item)
	}

	return availability.NewReservationSet(items...)
}

// clockAt переводит момент во время суток дня [dayStart, dayEnd)
// Время суток берется по настенным часам пояса дня (день перехода на летнее
// время длится 23 или 25 часов)
func clockAt(dayStart, dayEnd, t time.Time) availability.Clock {
	if !t.After(dayStart) {
		return 0
	}
	if !t.Before(dayEnd) {
		return availability.EndOfDay
	}
	return availability.ClockOf(t.In(dayStart.Location()))
}
