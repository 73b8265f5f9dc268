package ministers

import (
	"context"

	"github.com/m04kA/SMC-MinisterSchedule/internal/domain"
)

// MinisterRepository интерфейс репозитория служителей
type MinisterRepository interface {
	Create(ctx context.Context, m *domain.Minister) (*domain.Minister, error)
	GetByID(ctx context.Context, id string) (*domain.Minister, error)
	GetByUserID(ctx context.Context, userID string) (*domain.Minister, error)
	List(ctx context.Context) ([]*domain.Minister, error)
	Delete(ctx context.Context, id string) error
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
