package copy_week

import (
	"context"
	"time"

	"github.com/m04kA/SMC-MinisterSchedule/internal/domain"
)

// ServiceTimeRepository интерфейс репозитория служб
type ServiceTimeRepository interface {
	List(ctx context.Context) ([]*domain.ServiceTime, error)
	Create(ctx context.Context, st *domain.ServiceTime) (*domain.ServiceTime, error)
}

// Publisher оповещение об изменении календаря
type Publisher interface {
	Publish(ctx context.Context, reason string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
