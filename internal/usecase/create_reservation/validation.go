package create_reservation

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/urbandepot/parking-service/internal/availability"
	"github.com/urbandepot/parking-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) (domain.VehicleType, error) {
	if strings.TrimSpace(req.PlaceID) == "" {
		return "", fmt.Errorf("%w: placeId is required", ErrInvalidInput)
	}

	if _, err := mail.ParseAddress(req.UserEmail); err != nil {
		return "", fmt.Errorf("%w: invalid user email", ErrInvalidInput)
	}

	if name := strings.TrimSpace(req.FullName); name == "" || len(name) > domain.MaxFullNameLength {
		return "", fmt.Errorf("%w: fullName is required and must be at most %d characters",
			ErrInvalidInput, domain.MaxFullNameLength)
	}

	if phone := strings.TrimSpace(req.Phone); phone == "" || len(phone) > domain.MaxPhoneLength {
		return "", fmt.Errorf("%w: phone is required and must be at most %d characters",
			ErrInvalidInput, domain.MaxPhoneLength)
	}

	if plate := strings.TrimSpace(req.LicensePlate); plate == "" || len(plate) > domain.MaxLicensePlateLength {
		return "", fmt.Errorf("%w: licensePlate is required and must be at most %d characters",
			ErrInvalidInput, domain.MaxLicensePlateLength)
	}

	vehicleType, ok := domain.ParseVehicleType(req.VehicleType)
	if !ok {
		return "", fmt.Errorf("%w: unknown vehicleType %q", ErrInvalidInput, req.VehicleType)
	}

	return vehicleType, nil
}

// parseInterval разбирает дату и время заезда/выезда в интервал [checkin, checkout)
func parseInterval(req *Request, loc *time.Location) (availability.Interval[time.Time], error) {
	checkin, err := domain.ParseDateTime(req.CheckinDate, req.CheckinTime, loc)
	if err != nil {
		return availability.Interval[time.Time]{}, fmt.Errorf("%w: checkin: %v", ErrInvalidInput, err)
	}

	checkout, err := domain.ParseDateTime(req.CheckoutDate, req.CheckoutTime, loc)
	if err != nil {
		return availability.Interval[time.Time]{}, fmt.Errorf("%w: checkout: %v", ErrInvalidInput, err)
	}

	interval, err := availability.NewInterval(checkin, checkout)
	if err != nil {
		return availability.Interval[time.Time]{}, fmt.Errorf("%w: %v", ErrInvalidInterval, err)
	}

	if checkout.Sub(checkin) > domain.MaxReservationDays*24*time.Hour {
		return availability.Interval[time.Time]{}, fmt.Errorf("%w: reservation cannot exceed %d days",
			ErrInvalidInput, domain.MaxReservationDays)
	}

	return interval, nil
}

// validateListingPeriod проверяет, что площадка сдается в дни заезда и выезда
func validateListingPeriod(place *domain.Place, requested availability.Interval[time.Time]) error {
	// Последний занятый момент: выезд ровно в полночь не занимает следующий день
	lastOccupied := requested.End().Add(-time.Minute)

	if !place.CoversDate(requested.Start()) || !place.CoversDate(lastOccupied) {
		return ErrOutsideListingPeriod
	}
	return nil
}

// validateOpeningHours проверяет, что однодневное бронирование лежит внутри окна работы
// Многодневные бронирования окном не ограничиваются
func validateOpeningHours(place *domain.Place, requested availability.Interval[time.Time]) error {
	window, err := place.Window()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAvailability, err)
	}

	start := requested.Start()
	end := requested.End()

	startDay := dayStart(start)
	if !dayStart(end).Equal(startDay) && !end.Equal(startDay.AddDate(0, 0, 1)) {
		return nil
	}

	endClock := availability.ClockOf(end)
	if !dayStart(end).Equal(startDay) {
		endClock = availability.EndOfDay
	}

	daily, err := availability.NewInterval(availability.ClockOf(start), endClock)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInterval, err)
	}

	if !window.Covers(daily) {
		return fmt.Errorf("%w: %s is outside %s", ErrOutsideOpeningHours, availability.FormatSlot(daily), place.Availability)
	}
	return nil
}

func dayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
