package build_schedule

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном диапазоне дат
	ErrInvalidInput = errors.New("build_schedule: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("build_schedule: internal error")
)
