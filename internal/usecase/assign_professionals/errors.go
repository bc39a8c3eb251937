package assign_professionals

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуги нет в загруженной коллекции
	ErrServiceNotFound = errors.New("assign_professionals: service not found")

	// ErrProfessionalNotFound возвращается для неизвестного профессионала
	ErrProfessionalNotFound = errors.New("assign_professionals: professional not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("assign_professionals: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("assign_professionals: internal error")
)
