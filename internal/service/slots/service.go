package slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-MinisterSchedule/internal/domain"
	slotRepo "github.com/m04kA/SMC-MinisterSchedule/internal/infra/storage/slot"
)

// Service чтение слотов для проверки прав в обработчиках
type Service struct {
	repo   SlotRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса слотов
func NewService(repo SlotRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// GetByID возвращает слот вместе с именем назначенного служителя
func (s *Service) GetByID(ctx context.Context, id string) (*domain.MinisterSlot, error) {
	slot, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("GetSlot: slot id=%s not found", id)
			return nil, ErrSlotNotFound
		}
		s.logger.Error("GetSlot: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return slot, nil
}
