package ensure_slots

import (
	"context"

	"github.com/m04kA/SMC-MinisterSchedule/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	Create(ctx context.Context, slot *domain.MinisterSlot) (*domain.MinisterSlot, error)
	GetByKey(ctx context.Context, key domain.SlotKey) (*domain.MinisterSlot, error)
}

// ServiceTimeRepository интерфейс репозитория служб (нужен резервному списку служб)
type ServiceTimeRepository interface {
	Create(ctx context.Context, st *domain.ServiceTime) (*domain.ServiceTime, error)
	List(ctx context.Context) ([]*domain.ServiceTime, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
