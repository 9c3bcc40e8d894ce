package place

import "errors"

var (
	// ErrPlaceNotFound возвращается, когда площадка не найдена
	ErrPlaceNotFound = errors.New("place.repository: place not found")

	// ErrPlaceAlreadyExists возвращается при конфликте идентификатора площадки
	ErrPlaceAlreadyExists = errors.New("place.repository: place already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("place.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("place.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("place.repository: failed to scan row")
)
