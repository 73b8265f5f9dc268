package assign_minister

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("assign_minister: slot not found")

	// ErrMinisterNotFound возвращается, когда служителя нет в составе
	ErrMinisterNotFound = errors.New("assign_minister: minister not found")

	// ErrAlreadyAssigned возвращается, когда служитель уже занимает слот этой службы в этот день
	ErrAlreadyAssigned = errors.New("assign_minister: minister is already assigned to this service")

	// ErrConflict возвращается, когда запись отклонена из-за конкурентного изменения; запрос можно повторить
	ErrConflict = errors.New("assign_minister: concurrent update, retry")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("assign_minister: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("assign_minister: internal error")
)
