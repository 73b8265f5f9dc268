package release_slot

import "github.com/m04kA/SMC-MinisterSchedule/internal/domain"

// Request модель запроса на освобождение слота
type Request struct {
	SlotID string
	// ExpectedMinisterID если задан, слот освобождается, только пока его занимает этот служитель
	ExpectedMinisterID *string
}

// Response результат освобождения
// WasAssigned=false: слот уже был свободен, ничего не изменилось
type Response struct {
	Slot               *domain.MinisterSlot
	WasAssigned        bool
	PreviousMinisterID *string
}
