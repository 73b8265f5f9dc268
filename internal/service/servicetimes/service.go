package servicetimes

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-MinisterSchedule/internal/domain"
	serviceTimeRepo "github.com/m04kA/SMC-MinisterSchedule/internal/infra/storage/servicetime"
	"github.com/m04kA/SMC-MinisterSchedule/internal/service/servicetimes/models"
	"github.com/m04kA/SMC-MinisterSchedule/pkg/types"
)

const (
	maxNameLength = 200
	maxPositions  = 20
)

// Service реестр определений служб (регулярных и разовых)
type Service struct {
	repo             ServiceTimeRepository
	slotRepo         SlotRepository
	txManager        TransactionManager
	publisher        Publisher
	defaultPositions int
	logger           Logger
}

// NewService создает новый экземпляр сервиса служб
func NewService(
	repo ServiceTimeRepository,
	slotRepo SlotRepository,
	txManager TransactionManager,
	publisher Publisher,
	defaultPositions int,
	logger Logger,
) *Service {
	if defaultPositions < 1 {
		defaultPositions = domain.DefaultPositions
	}
	return &Service{
		repo:             repo,
		slotRepo:         slotRepo,
		txManager:        txManager,
		publisher:        publisher,
		defaultPositions: defaultPositions,
		logger:           logger,
	}
}

// ListAll возвращает все определения служб (регулярные и разовые)
func (s *Service) ListAll(ctx context.Context) ([]*models.ServiceTimeResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("ListServiceTimes: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListServiceTimes: fetched %d service times", len(list))
	return models.FromDomainServiceTimeList(list), nil
}

// Add создает определение службы
// Позиции по умолчанию берутся из конфигурации; пустое время - ошибка валидации
func (s *Service) Add(ctx context.Context, req *models.AddServiceTimeRequest) (*models.ServiceTimeResponse, error) {
	s.logger.Info("AddServiceTime: date=%s, time=%q, name=%q, recurring=%t",
		req.Date.Format(domain.DateFormat), req.Time, req.Name, req.IsRecurring)

	st, err := s.validateAdd(req)
	if err != nil {
		s.logger.Warn("AddServiceTime: validation failed: %v", err)
		return nil, err
	}

	created, err := s.repo.Create(ctx, st)
	if err != nil {
		if errors.Is(err, serviceTimeRepo.ErrServiceTimeExists) {
			s.logger.Warn("AddServiceTime: one-off service already exists: date=%s, time=%s, name=%q",
				st.Date.Format(domain.DateFormat), st.Time, st.Name)
			return nil, ErrAlreadyExists
		}
		s.logger.Error("AddServiceTime: repository error: %v", err)
		return nil, fmt.Errorf("%w: Add - repository error: %v", ErrInternal, err)
	}

	s.publisher.Publish(ctx, domain.ReasonServiceTimeAdded)

	s.logger.Info("AddServiceTime: created service time id=%s", created.ID)
	return models.FromDomainServiceTime(created), nil
}

// Delete удаляет определение службы
// Возвращает false, если служба не найдена; слоты удаляются каскадно в хранилище
func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	s.logger.Info("DeleteServiceTime: id=%s", id)

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, serviceTimeRepo.ErrServiceTimeNotFound) {
			s.logger.Warn("DeleteServiceTime: service time id=%s not found", id)
			return false, nil
		}
		s.logger.Error("DeleteServiceTime: repository error for id=%s: %v", id, err)
		return false, fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.publisher.Publish(ctx, domain.ReasonServiceTimeDeleted)

	s.logger.Info("DeleteServiceTime: deleted service time id=%s", id)
	return true, nil
}

// Reset удаляет все слоты и все определения служб одной транзакцией
func (s *Service) Reset(ctx context.Context) (*models.ResetResponse, error) {
	s.logger.Warn("ResetCalendar: deleting all slots and service times")

	var result models.ResetResponse
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		slots, err := s.slotRepo.DeleteAll(txCtx)
		if err != nil {
			return fmt.Errorf("%w: Reset - delete slots: %v", ErrInternal, err)
		}
		services, err := s.repo.DeleteAll(txCtx)
		if err != nil {
			return fmt.Errorf("%w: Reset - delete service times: %v", ErrInternal, err)
		}
		result.DeletedSlots = slots
		result.DeletedServiceTimes = services
		return nil
	})
	if err != nil {
		s.logger.Error("ResetCalendar: %v", err)
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: Reset - transaction: %v", ErrInternal, err)
	}

	s.publisher.Publish(ctx, domain.ReasonCalendarReset)

	s.logger.Info("ResetCalendar: deleted %d slots and %d service times",
		result.DeletedSlots, result.DeletedServiceTimes)
	return &result, nil
}

func (s *Service) validateAdd(req *models.AddServiceTimeRequest) (*domain.ServiceTime, error) {
	if strings.TrimSpace(req.Time) == "" {
		return nil, fmt.Errorf("%w: time is required", ErrInvalidInput)
	}

	t, err := types.NewTimeStringFromString(req.Time)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > maxNameLength {
		return nil, fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}

	positions := s.defaultPositions
	if req.Positions != nil {
		positions = *req.Positions
	}
	if positions < 1 || positions > maxPositions {
		return nil, fmt.Errorf("%w: positions must be between 1 and %d", ErrInvalidInput, maxPositions)
	}

	return &domain.ServiceTime{
		Date:        domain.NormalizeDate(req.Date),
		Time:        t,
		Name:        name,
		IsRecurring: req.IsRecurring,
		Positions:   positions,
	}, nil
}
