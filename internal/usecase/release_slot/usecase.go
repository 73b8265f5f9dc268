package release_slot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-MinisterSchedule/internal/domain"
	slotRepo "github.com/m04kA/SMC-MinisterSchedule/internal/infra/storage/slot"
	"github.com/m04kA/SMC-MinisterSchedule/pkg/txmanager"
)

// UseCase use case освобождения слота
type UseCase struct {
	slotRepo  SlotRepository
	txManager TransactionManager
	publisher Publisher
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(slotRepo SlotRepository, txManager TransactionManager, publisher Publisher, logger Logger) *UseCase {
	return &UseCase{
		slotRepo:  slotRepo,
		txManager: txManager,
		publisher: publisher,
		logger:    logger,
	}
}

// Execute снимает служителя со слота
// Освобождение свободного слота - успешная операция без изменений
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ReleaseSlot: slot=%s", req.SlotID)

	if strings.TrimSpace(req.SlotID) == "" {
		uc.logger.Warn("ReleaseSlot: validation failed: empty slot id")
		return nil, fmt.Errorf("%w: slot id is required", ErrInvalidInput)
	}

	var result Response
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		slot, err := uc.slotRepo.GetByID(txCtx, req.SlotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				return ErrSlotNotFound
			}
			if errors.Is(err, slotRepo.ErrConflict) {
				return ErrConflict
			}
			return fmt.Errorf("%w: Execute - get slot: %v", ErrInternal, err)
		}

		if slot.IsOpen() {
			result.Slot = slot
			return nil
		}

		if req.ExpectedMinisterID != nil && !slot.IsAssignedTo(*req.ExpectedMinisterID) {
			return ErrAssignmentChanged
		}

		if err := uc.slotRepo.UpdateAssignment(txCtx, slot.ID, nil); err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				return ErrSlotNotFound
			}
			if errors.Is(err, slotRepo.ErrConflict) {
				return ErrConflict
			}
			return fmt.Errorf("%w: Execute - clear assignment: %v", ErrInternal, err)
		}

		result.WasAssigned = true
		result.PreviousMinisterID = slot.MinisterID
		slot.MinisterID = nil
		slot.MinisterName = nil
		result.Slot = slot
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSlotNotFound) {
			uc.logger.Warn("ReleaseSlot: slot id=%s not found", req.SlotID)
			return nil, err
		}
		if errors.Is(err, ErrConflict) {
			uc.logger.Warn("ReleaseSlot: concurrent update rejected for slot id=%s", req.SlotID)
			return nil, err
		}
		if errors.Is(err, txmanager.ErrSerialization) {
			uc.logger.Warn("ReleaseSlot: commit rejected for slot id=%s: %v", req.SlotID, err)
			return nil, fmt.Errorf("%w: %v", ErrConflict, err)
		}
		if errors.Is(err, ErrAssignmentChanged) {
			uc.logger.Warn("ReleaseSlot: slot id=%s is no longer held by minister id=%s", req.SlotID, *req.ExpectedMinisterID)
			return nil, err
		}
		uc.logger.Error("ReleaseSlot: transaction failed for slot id=%s: %v", req.SlotID, err)
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: Execute - transaction: %v", ErrInternal, err)
	}

	if !result.WasAssigned {
		uc.logger.Info("ReleaseSlot: slot id=%s was already open", req.SlotID)
		return &result, nil
	}

	uc.publisher.Publish(ctx, domain.ReasonSlotReleased)

	uc.logger.Info("ReleaseSlot: slot id=%s released, previous minister id=%s", req.SlotID, *result.PreviousMinisterID)
	return &result, nil
}
