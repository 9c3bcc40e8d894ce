package payments

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrAccessDenied возвращается, когда пользователь оплачивает чужое бронирование
	ErrAccessDenied = errors.New("access denied")

	// ErrReservationNotPayable возвращается для отмененного или уже оплаченного бронирования
	ErrReservationNotPayable = errors.New("reservation cannot be paid")

	// ErrInvalidSignature возвращается, когда подпись платежа не совпала
	ErrInvalidSignature = errors.New("invalid payment signature")

	// ErrOrderMismatch возвращается, когда заказ не принадлежит бронированию
	ErrOrderMismatch = errors.New("order does not belong to reservation")

	// ErrGateway возвращается, когда платежный шлюз отклонил запрос или недоступен
	ErrGateway = errors.New("payment gateway error")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
