package assign_minister

import "github.com/m04kA/SMC-MinisterSchedule/internal/domain"

// Request модель запроса на назначение служителя
type Request struct {
	SlotID     string
	MinisterID string
}

// Response назначенный слот (перечитан после фиксации транзакции)
type Response struct {
	Slot *domain.MinisterSlot
}
