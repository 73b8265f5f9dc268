package servicetimes

import (
	"context"

	"github.com/m04kA/SMC-MinisterSchedule/internal/domain"
)

// ServiceTimeRepository интерфейс репозитория служб
type ServiceTimeRepository interface {
	Create(ctx context.Context, st *domain.ServiceTime) (*domain.ServiceTime, error)
	List(ctx context.Context) ([]*domain.ServiceTime, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) (int64, error)
}

// SlotRepository интерфейс репозитория слотов (нужен для полного сброса календаря)
type SlotRepository interface {
	DeleteAll(ctx context.Context) (int64, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
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
