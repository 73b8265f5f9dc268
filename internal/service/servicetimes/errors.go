package servicetimes

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("servicetimes: invalid input data")

	// ErrAlreadyExists возвращается, когда такая разовая служба на эту дату уже есть
	ErrAlreadyExists = errors.New("servicetimes: service time already exists")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("servicetimes: internal error")
)
