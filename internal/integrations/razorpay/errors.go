package razorpay

import "errors"

var (
	// ErrBadRequest возвращается, когда шлюз отклонил параметры заказа
	ErrBadRequest = errors.New("razorpay client: bad request")

	// ErrUnauthorized возвращается при неверных ключах API
	ErrUnauthorized = errors.New("razorpay client: unauthorized")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("razorpay client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от шлюза
	ErrInvalidResponse = errors.New("razorpay client: invalid response")
)
