package crud

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation возвращается, когда в черновике не заполнены обязательные поля
	ErrValidation = errors.New("crud: validation failed")

	// ErrNetwork возвращается при сетевой ошибке (ответ бэкенда не получен)
	ErrNetwork = errors.New("crud: network error")

	// ErrServer возвращается при ошибочном или некорректном ответе бэкенда
	ErrServer = errors.New("crud: server error")

	// ErrDraftNotOpen возвращается при работе с черновиком, который не открыт
	ErrDraftNotOpen = errors.New("crud: no open draft")

	// ErrDraftAlreadyOpen возвращается при попытке открыть второй черновик
	ErrDraftAlreadyOpen = errors.New("crud: draft already open")

	// ErrRecordNotFound возвращается, когда записи нет в загруженной коллекции
	ErrRecordNotFound = errors.New("crud: record not found")

	// ErrReferenceNotFound возвращается, когда поле-ссылка указывает на отсутствующую запись
	ErrReferenceNotFound = errors.New("crud: referenced record not found")

	// ErrOutOfRange возвращается для номера страницы вне допустимого окна
	ErrOutOfRange = errors.New("crud: page out of range")

	// ErrOperationNotAllowed возвращается для операции, которую семейство не поддерживает
	ErrOperationNotAllowed = errors.New("crud: operation not allowed")

	// ErrInvalidField возвращается при попытке изменить недопустимое поле черновика
	ErrInvalidField = errors.New("crud: invalid field")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("crud: internal error")
)

// ValidationError список незаполненных обязательных полей
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: required fields missing: %s", ErrValidation, strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

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

func (e *ServerError) Is(target error) bool {
	return target == ErrServer
}
