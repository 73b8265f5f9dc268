package release_slot

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("release_slot: slot not found")

	// ErrAssignmentChanged возвращается, когда слот успели переназначить другому служителю
	ErrAssignmentChanged = errors.New("release_slot: slot is assigned to another minister")

	// ErrConflict возвращается, когда запись отклонена из-за конкурентного изменения; запрос можно повторить
	ErrConflict = errors.New("release_slot: concurrent update, retry")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("release_slot: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("release_slot: internal error")
)
