package backend

import (
	"errors"
	"fmt"
)

var (
	// ErrNetwork возвращается при ошибке транспорта (ответ не получен)
	ErrNetwork = errors.New("backend client: network error")

	// ErrServer возвращается при ответе бэкенда с кодом не из 2xx
	ErrServer = errors.New("backend client: server error")

	// ErrInvalidResponse возвращается, когда успешный ответ не удалось разобрать
	ErrInvalidResponse = errors.New("backend client: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("backend client: internal error")
)

// ServerError ответ бэкенда с кодом не из 2xx
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: status %d", ErrServer, e.StatusCode)
	}
	return fmt.Sprintf("%s: status %d: %s", ErrServer, e.StatusCode, e.Message)
}

// Is позволяет сравнивать ServerError с ErrServer через errors.Is
func (e *ServerError) Is(target error) bool {
	return target == ErrServer
}
