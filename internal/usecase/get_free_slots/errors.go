package get_free_slots

import "errors"

var (
	// ErrPlaceNotFound возвращается, когда площадка не найдена
	ErrPlaceNotFound = errors.New("get_free_slots: place not found")

	// ErrInvalidAvailability возвращается, когда окно работы площадки не разбирается
	ErrInvalidAvailability = errors.New("get_free_slots: invalid availability format")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_free_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_free_slots: internal error")
)
