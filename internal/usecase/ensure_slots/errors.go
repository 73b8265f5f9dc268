package ensure_slots

import "errors"

var (
	// ErrInternal возвращается при ошибках хранилища; слоты, созданные до ошибки, остаются
	ErrInternal = errors.New("ensure_slots: internal error")
)
