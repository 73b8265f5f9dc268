package servicetime

import "errors"

var (
	// ErrServiceTimeNotFound возвращается, когда служба не найдена
	ErrServiceTimeNotFound = errors.New("servicetime.repository: service time not found")

	// ErrServiceTimeExists возвращается, когда разовая служба (дата, время, название) уже есть
	ErrServiceTimeExists = errors.New("servicetime.repository: one-off service time already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("servicetime.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("servicetime.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("servicetime.repository: failed to scan row")
)
