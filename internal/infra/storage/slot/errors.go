package slot

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("slot.repository: slot not found")

	// ErrSlotExists возвращается, когда слот (служба, дата, позиция) уже создан
	ErrSlotExists = errors.New("slot.repository: slot already exists")

	// ErrMinisterAlreadyAssigned возвращается, когда служитель уже занимает слот этой службы в этот день
	ErrMinisterAlreadyAssigned = errors.New("slot.repository: minister already assigned to this service occurrence")

	// ErrReferenceNotFound возвращается, когда служба или служитель, на которых ссылается слот, не существуют
	ErrReferenceNotFound = errors.New("slot.repository: referenced service time or minister not found")

	// ErrConflict возвращается, когда БД отклонила операцию из-за конкурентной транзакции
	ErrConflict = errors.New("slot.repository: concurrent transaction conflict")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("slot.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("slot.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("slot.repository: failed to scan row")
)
