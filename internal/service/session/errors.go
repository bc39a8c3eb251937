package session

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверном логине или пароле
	ErrInvalidCredentials = errors.New("session: invalid credentials")

	// ErrAuthUnavailable возвращается, когда проверить учетные данные не удалось
	ErrAuthUnavailable = errors.New("session: authenticator unavailable")

	// ErrNotAuthenticated возвращается для анонимной сессии
	ErrNotAuthenticated = errors.New("session: not authenticated")
)
