package minister

import "errors"

var (
	// ErrMinisterNotFound возвращается, когда служитель не найден
	ErrMinisterNotFound = errors.New("minister.repository: minister not found")

	// ErrDuplicateUserID возвращается, когда пользователь уже привязан к другому служителю
	ErrDuplicateUserID = errors.New("minister.repository: user is already linked to a minister")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("minister.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("minister.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("minister.repository: failed to scan row")
)
