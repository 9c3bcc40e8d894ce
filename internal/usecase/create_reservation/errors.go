package create_reservation

import "errors"

var (
	// ErrPlaceNotFound возвращается, когда площадка не найдена
	ErrPlaceNotFound = errors.New("create_reservation: place not found")

	// ErrPlaceNotVerified возвращается, когда площадка еще не проверена администратором
	ErrPlaceNotVerified = errors.New("create_reservation: place is not verified")

	// ErrOutsideListingPeriod возвращается, когда даты бронирования вне периода сдачи площадки
	ErrOutsideListingPeriod = errors.New("create_reservation: dates are outside the place listing period")

	// ErrOutsideOpeningHours возвращается, когда однодневное бронирование выходит за окно работы
	ErrOutsideOpeningHours = errors.New("create_reservation: reservation is outside the opening hours")

	// ErrInvalidAvailability возвращается, когда окно работы площадки не разбирается
	ErrInvalidAvailability = errors.New("create_reservation: invalid place availability")

	// ErrInvalidInterval возвращается, когда выезд не позже заезда
	ErrInvalidInterval = errors.New("create_reservation: checkout must be after checkin")

	// ErrCheckinInPast возвращается при попытке забронировать прошедшее время
	ErrCheckinInPast = errors.New("create_reservation: checkin is in the past")

	// ErrSlotAlreadyBooked возвращается, когда интервал пересекается с активным бронированием
	ErrSlotAlreadyBooked = errors.New("create_reservation: time slot already booked")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
