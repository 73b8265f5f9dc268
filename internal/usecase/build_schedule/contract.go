package build_schedule

import (
	"context"
	"time"

	"github.com/m04kA/SMC-MinisterSchedule/internal/domain"
)

// ServiceTimeRepository интерфейс репозитория служб
type ServiceTimeRepository interface {
	List(ctx context.Context) ([]*domain.ServiceTime, error)
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	ListByDateRange(ctx context.Context, from, to time.Time) ([]*domain.MinisterSlot, error)
}

// SlotMaterializer создание недостающих слотов (ensure_slots.UseCase)
type SlotMaterializer interface {
	EnsureSlotsFor(ctx context.Context, date time.Time, defs []*domain.ServiceTime, existing []*domain.MinisterSlot) ([]*domain.MinisterSlot, error)
	ApplyFallback(ctx context.Context, date time.Time, defs []*domain.ServiceTime) ([]*domain.ServiceTime, error)
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
