package check_conflict

import "errors"

var (
	// ErrPlaceNotFound возвращается, когда площадка не найдена
	ErrPlaceNotFound = errors.New("check_conflict: place not found")

	// ErrInvalidInterval возвращается, когда выезд не позже заезда
	ErrInvalidInterval = errors.New("check_conflict: checkout must be after checkin")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_conflict: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_conflict: internal error")
)
