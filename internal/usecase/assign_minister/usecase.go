package assign_minister

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-MinisterSchedule/internal/domain"
	ministerRepo "github.com/m04kA/SMC-MinisterSchedule/internal/infra/storage/minister"
	slotRepo "github.com/m04kA/SMC-MinisterSchedule/internal/infra/storage/slot"
	"github.com/m04kA/SMC-MinisterSchedule/pkg/txmanager"
)

// UseCase use case назначения служителя на слот
type UseCase struct {
	slotRepo     SlotRepository
	ministerRepo MinisterRepository
	txManager    TransactionManager
	publisher    Publisher
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	ministerRepo MinisterRepository,
	txManager TransactionManager,
	publisher Publisher,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:     slotRepo,
		ministerRepo: ministerRepo,
		txManager:    txManager,
		publisher:    publisher,
		logger:       logger,
	}
}

// Execute назначает служителя на слот
// Проверка "служитель еще не занят в этой службе в этот день" и запись выполняются
// в сериализуемой транзакции; уникальный индекс (служба, дата, служитель) в БД
// отсекает оставшиеся гонки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AssignMinister: slot=%s, minister=%s", req.SlotID, req.MinisterID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AssignMinister: validation failed: %v", err)
		return nil, err
	}

	// 2. Служитель должен быть в составе
	minister, err := uc.ministerRepo.GetByID(ctx, req.MinisterID)
	if err != nil {
		if errors.Is(err, ministerRepo.ErrMinisterNotFound) {
			uc.logger.Warn("AssignMinister: minister id=%s not found", req.MinisterID)
			return nil, ErrMinisterNotFound
		}
		uc.logger.Error("AssignMinister: failed to get minister id=%s: %v", req.MinisterID, err)
		return nil, fmt.Errorf("%w: Execute - get minister: %v", ErrInternal, err)
	}

	// 3. Проверка и запись в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Слот (в postgres блокируется до конца транзакции)
		slot, err := uc.slotRepo.GetByID(txCtx, req.SlotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				uc.logger.Warn("AssignMinister: slot id=%s not found", req.SlotID)
				return ErrSlotNotFound
			}
			if errors.Is(err, slotRepo.ErrConflict) {
				return ErrConflict
			}
			return fmt.Errorf("%w: Execute - get slot: %v", ErrInternal, err)
		}

		// 3.2. Все слоты этой службы в этот день, включая целевой
		occurrence, err := uc.slotRepo.ListByOccurrence(txCtx, slot.ServiceID, slot.Date)
		if err != nil {
			if errors.Is(err, slotRepo.ErrConflict) {
				return ErrConflict
			}
			return fmt.Errorf("%w: Execute - list occurrence slots: %v", ErrInternal, err)
		}

		if domain.IsMinisterAssigned(occurrence, minister.ID, slot.ServiceID, slot.Date) {
			uc.logger.Warn("AssignMinister: minister id=%s already serves service=%s on %s",
				minister.ID, slot.ServiceID, slot.Date.Format(domain.DateFormat))
			return ErrAlreadyAssigned
		}

		// 3.3. Запись
		if err := uc.slotRepo.UpdateAssignment(txCtx, slot.ID, &minister.ID); err != nil {
			switch {
			case errors.Is(err, slotRepo.ErrMinisterAlreadyAssigned):
				uc.logger.Warn("AssignMinister: unique index rejected minister id=%s for slot id=%s", minister.ID, slot.ID)
				return ErrAlreadyAssigned
			case errors.Is(err, slotRepo.ErrReferenceNotFound):
				return ErrMinisterNotFound
			case errors.Is(err, slotRepo.ErrSlotNotFound):
				return ErrSlotNotFound
			case errors.Is(err, slotRepo.ErrConflict):
				return ErrConflict
			}
			return fmt.Errorf("%w: Execute - update assignment: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSlotNotFound) || errors.Is(err, ErrMinisterNotFound) || errors.Is(err, ErrAlreadyAssigned) {
			return nil, err
		}
		if errors.Is(err, ErrConflict) {
			uc.logger.Warn("AssignMinister: concurrent update rejected for slot id=%s", req.SlotID)
			return nil, err
		}
		if errors.Is(err, txmanager.ErrSerialization) {
			uc.logger.Warn("AssignMinister: commit rejected for slot id=%s: %v", req.SlotID, err)
			return nil, fmt.Errorf("%w: %v", ErrConflict, err)
		}
		uc.logger.Error("AssignMinister: transaction failed for slot id=%s: %v", req.SlotID, err)
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: Execute - transaction: %v", ErrInternal, err)
	}

	// 4. Читаем зафиксированное состояние
	slot, err := uc.slotRepo.GetByID(ctx, req.SlotID)
	if err != nil {
		uc.logger.Error("AssignMinister: failed to reload slot id=%s: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: Execute - reload slot: %v", ErrInternal, err)
	}

	uc.publisher.Publish(ctx, domain.ReasonSlotAssigned)

	uc.logger.Info("AssignMinister: slot id=%s assigned to minister id=%s", slot.ID, minister.ID)
	return &Response{Slot: slot}, nil
}
