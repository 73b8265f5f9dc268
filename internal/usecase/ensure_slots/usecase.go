package ensure_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-MinisterSchedule/internal/domain"
	"github.com/m04kA/SMC-MinisterSchedule/internal/infra/storage/servicetime"
	slotRepo "github.com/m04kA/SMC-MinisterSchedule/internal/infra/storage/slot"
)

// UseCase материализация слотов: из определений служб в конкретные слоты на дату
type UseCase struct {
	slotRepo        SlotRepository
	serviceTimeRepo ServiceTimeRepository
	fallback        FallbackPolicy
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	serviceTimeRepo ServiceTimeRepository,
	fallback FallbackPolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:        slotRepo,
		serviceTimeRepo: serviceTimeRepo,
		fallback:        fallback,
		logger:          logger,
	}
}

// EnsureSlotsFor создает недостающие слоты на date и возвращает все слоты дня
// (существующие и созданные) для служб, которые в этот день проходят
//
// Идемпотентна: существующие слоты не создаются повторно. Если параллельный вызов
// успел создать слот раньше, срабатывает уникальный индекс и слот перечитывается
func (uc *UseCase) EnsureSlotsFor(
	ctx context.Context,
	date time.Time,
	defs []*domain.ServiceTime,
	existing []*domain.MinisterSlot,
) ([]*domain.MinisterSlot, error) {
	day := domain.NormalizeDate(date)

	present, missing := PlanSlots(day, defs, existing)
	if len(missing) == 0 {
		return present, nil
	}

	uc.logger.Info("EnsureSlots: date=%s, existing=%d, missing=%d",
		day.Format(domain.DateFormat), len(present), len(missing))

	result := present
	for _, key := range missing {
		slot, err := uc.slotRepo.Create(ctx, &domain.MinisterSlot{
			ServiceID: key.ServiceID,
			Date:      key.Date,
			Position:  key.Position,
		})
		if errors.Is(err, slotRepo.ErrSlotExists) {
			slot, err = uc.slotRepo.GetByKey(ctx, key)
		}
		if err != nil {
			uc.logger.Error("EnsureSlots: failed to create slot service=%s, date=%s, position=%d: %v",
				key.ServiceID, day.Format(domain.DateFormat), key.Position, err)
			return result, fmt.Errorf("%w: EnsureSlotsFor - create slot: %v", ErrInternal, err)
		}
		result = append(result, slot)
	}

	return result, nil
}

// ApplyFallback при включенной политике создает разовые службы из резервного
// списка на date, если на этот день не проходит ни одна служба
// Возвращает defs, дополненные созданными службами
//
// defs могли устареть: перед записью список перечитывается из хранилища, а повторную
// разовую службу отсекает уникальный индекс, поэтому для date политика срабатывает один раз
func (uc *UseCase) ApplyFallback(ctx context.Context, date time.Time, defs []*domain.ServiceTime) ([]*domain.ServiceTime, error) {
	day := domain.NormalizeDate(date)

	if !uc.fallback.appliesTo(day) || len(domain.OccurringOn(defs, day)) > 0 {
		return defs, nil
	}

	fresh, err := uc.serviceTimeRepo.List(ctx)
	if err != nil {
		uc.logger.Error("EnsureSlots: failed to re-read service times for %s: %v", day.Format(domain.DateFormat), err)
		return defs, fmt.Errorf("%w: ApplyFallback - list service times: %v", ErrInternal, err)
	}
	if len(domain.OccurringOn(fresh, day)) > 0 {
		return fresh, nil
	}

	uc.logger.Warn("EnsureSlots: no services configured for %s, applying fallback list of %d services",
		day.Format(domain.DateFormat), len(uc.fallback.Services))

	created := 0
	for _, fs := range uc.fallback.Services {
		positions := fs.Positions
		if positions < 1 {
			positions = domain.DefaultPositions
		}

		_, err := uc.serviceTimeRepo.Create(ctx, &domain.ServiceTime{
			Date:        day,
			Time:        fs.Time,
			Name:        fs.Name,
			IsRecurring: false,
			Positions:   positions,
		})
		if errors.Is(err, servicetime.ErrServiceTimeExists) {
			continue
		}
		if err != nil {
			uc.logger.Error("EnsureSlots: failed to create fallback service %s %s: %v", fs.Time, fs.Name, err)
			return fresh, fmt.Errorf("%w: ApplyFallback - create service time: %v", ErrInternal, err)
		}
		created++
	}

	if created == 0 {
		uc.logger.Info("EnsureSlots: fallback services for %s were created concurrently", day.Format(domain.DateFormat))
	}

	result, err := uc.serviceTimeRepo.List(ctx)
	if err != nil {
		return fresh, fmt.Errorf("%w: ApplyFallback - list service times: %v", ErrInternal, err)
	}

	return result, nil
}
