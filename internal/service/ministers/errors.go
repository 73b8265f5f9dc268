package ministers

import "errors"

var (
	// ErrMinisterNotFound возвращается, когда служитель не найден
	ErrMinisterNotFound = errors.New("ministers: minister not found")

	// ErrDuplicateUserID возвращается, когда пользователь уже привязан к другому служителю
	ErrDuplicateUserID = errors.New("ministers: user is already linked to a minister")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("ministers: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("ministers: internal error")
)
