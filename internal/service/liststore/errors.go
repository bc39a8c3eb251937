package liststore

import "errors"

var (
	// ErrOutOfRange возвращается для номера страницы вне [1, TotalPages]
	ErrOutOfRange = errors.New("liststore: page out of range")

	// ErrMissingID возвращается при попытке сохранить запись без идентификатора
	ErrMissingID = errors.New("liststore: record has no id")

	// ErrInvalidPageSize возвращается при неположительном размере страницы
	ErrInvalidPageSize = errors.New("liststore: invalid page size")
)
