package shop_timing

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном дне недели или интервале работы
	ErrInvalidInput = errors.New("shop_timing: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("shop_timing: internal error")
)
