package copy_week

import "errors"

var (
	// ErrInvalidInput возвращается, когда исходная и целевая недели совпадают
	ErrInvalidInput = errors.New("copy_week: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	// Службы, созданные до ошибки, остаются; повторный вызов их не дублирует
	ErrInternal = errors.New("copy_week: internal error")
)
