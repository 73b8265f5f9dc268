package build_schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-MinisterSchedule/internal/domain"
)

// UseCase use case построения расписания на диапазон дней
type UseCase struct {
	serviceTimeRepo ServiceTimeRepository
	slotRepo        SlotRepository
	materializer    SlotMaterializer
	settings        Settings
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	serviceTimeRepo ServiceTimeRepository,
	slotRepo SlotRepository,
	materializer SlotMaterializer,
	settings Settings,
	logger Logger,
) *UseCase {
	if settings.DefaultDays < 1 {
		settings.DefaultDays = domain.DefaultRangeDays
	}
	if settings.MaxDays < settings.DefaultDays {
		settings.MaxDays = domain.MaxRangeDays
	}
	if settings.Location == nil {
		settings.Location = time.UTC
	}

	return &UseCase{
		serviceTimeRepo: serviceTimeRepo,
		slotRepo:        slotRepo,
		materializer:    materializer,
		settings:        settings,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute строит расписание
// Перед выдачей для каждого дня создаются недостающие слоты
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	now := uc.timeProvider.Now().In(uc.settings.Location)
	today := domain.NormalizeDate(now)

	// 1. Диапазон
	start := today
	if !req.StartDate.IsZero() {
		start = domain.NormalizeDate(req.StartDate)
	}

	days := req.NumberOfDays
	if days == 0 {
		days = uc.settings.DefaultDays
	}
	if days < 0 || days > uc.settings.MaxDays {
		uc.logger.Warn("BuildSchedule: days=%d out of range 1..%d", days, uc.settings.MaxDays)
		return nil, fmt.Errorf("%w: number of days must be between 1 and %d", ErrInvalidInput, uc.settings.MaxDays)
	}

	end := domain.AddDays(start, days)
	uc.logger.Info("BuildSchedule: start=%s, days=%d", start.Format(domain.DateFormat), days)

	// 2. Определения служб и уже созданные слоты
	defs, err := uc.serviceTimeRepo.List(ctx)
	if err != nil {
		uc.logger.Error("BuildSchedule: failed to list service times: %v", err)
		return nil, fmt.Errorf("%w: Execute - list service times: %v", ErrInternal, err)
	}

	existing, err := uc.slotRepo.ListByDateRange(ctx, start, end)
	if err != nil {
		uc.logger.Error("BuildSchedule: failed to list slots: %v", err)
		return nil, fmt.Errorf("%w: Execute - list slots: %v", ErrInternal, err)
	}

	// 3. Материализация слотов по дням
	slots := make([]*domain.MinisterSlot, 0, len(existing))
	for i := 0; i < days; i++ {
		date := domain.AddDays(start, i)

		defs, err = uc.materializer.ApplyFallback(ctx, date, defs)
		if err != nil {
			return nil, fmt.Errorf("%w: Execute - fallback for %s: %v", ErrInternal, date.Format(domain.DateFormat), err)
		}

		daySlots, err := uc.materializer.EnsureSlotsFor(ctx, date, defs, existing)
		if err != nil {
			return nil, fmt.Errorf("%w: Execute - ensure slots for %s: %v", ErrInternal, date.Format(domain.DateFormat), err)
		}
		slots = append(slots, daySlots...)
	}

	// 4. Представление
	view := BuildRange(start, days, defs, slots, now)
	if req.MinisterID != nil {
		view = FilterForMinister(view, *req.MinisterID)
	}

	return &Response{
		StartDate: start,
		Today:     today,
		Days:      view,
		Weeks:     GroupWeeks(view),
	}, nil
}
