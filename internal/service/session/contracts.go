package session

import "context"

// Authenticator проверяет учетные данные администратора
type Authenticator interface {
	Authenticate(ctx context.Context, creds Credentials) (Principal, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
