package places

import "errors"

var (
	// ErrPlaceNotFound возвращается, когда площадка не найдена
	ErrPlaceNotFound = errors.New("place not found")

	// ErrPlaceAlreadyExists возвращается, когда площадка с таким названием уже зарегистрирована
	ErrPlaceAlreadyExists = errors.New("place already exists")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
