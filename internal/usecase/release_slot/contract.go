package release_slot

import (
	"context"

	"github.com/m04kA/SMC-MinisterSchedule/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByID(ctx context.Context, id string) (*domain.MinisterSlot, error)
	UpdateAssignment(ctx context.Context, slotID string, ministerID *string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Publisher оповещение об изменении календаря
type Publisher interface {
	Publish(ctx context.Context, reason string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
