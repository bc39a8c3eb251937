package authservice

import "errors"

var (
	// ErrUnauthorized возвращается, когда сервис авторизации отклонил учетные данные
	ErrUnauthorized = errors.New("authservice: unauthorized")

	// ErrUnavailable возвращается при сетевой ошибке или 5xx
	ErrUnavailable = errors.New("authservice: service unavailable")

	// ErrInvalidResponse возвращается при некорректном ответе
	ErrInvalidResponse = errors.New("authservice: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("authservice: internal error")
)
