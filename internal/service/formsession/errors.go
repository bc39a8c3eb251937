package formsession

import "errors"

var (
	// ErrAlreadyOpen возвращается при попытке открыть черновик, пока открыт другой
	ErrAlreadyOpen = errors.New("formsession: draft already open")

	// ErrNotOpen возвращается при работе с черновиком, который не открыт
	ErrNotOpen = errors.New("formsession: no open draft")

	// ErrInvalidField возвращается для пустого имени поля или поля идентификатора
	ErrInvalidField = errors.New("formsession: invalid field")

	// ErrTargetMismatch возвращается, когда запись для редактирования не совпадает с целью режима
	ErrTargetMismatch = errors.New("formsession: seed does not match edit target")

	// ErrInvalidMode возвращается для неизвестного режима формы
	ErrInvalidMode = errors.New("formsession: invalid mode")
)
