package ministers

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/m04kA/SMC-MinisterSchedule/internal/domain"
	ministerRepo "github.com/m04kA/SMC-MinisterSchedule/internal/infra/storage/minister"
	"github.com/m04kA/SMC-MinisterSchedule/internal/service/ministers/models"
)

const (
	keyByID   = "id:"
	keyByUser = "user:"

	maxNameLength = 200
)

// Service сервис состава служителей
// Поиск по ID и по пользователю идет через LRU кэш, который сбрасывается при
// любом изменении состава и по сигналу об изменении календаря
type Service struct {
	repo      MinisterRepository
	publisher Publisher
	cache     *lru.Cache[string, *domain.Minister]
	logger    Logger
}

// NewService создает новый экземпляр сервиса служителей
func NewService(repo MinisterRepository, publisher Publisher, cacheSize int, logger Logger) (*Service, error) {
	cache, err := lru.New[string, *domain.Minister](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("ministers: failed to create cache: %w", err)
	}

	return &Service{
		repo:      repo,
		publisher: publisher,
		cache:     cache,
		logger:    logger,
	}, nil
}

// List возвращает всех служителей
func (s *Service) List(ctx context.Context) ([]*models.MinisterResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("ListMinisters: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListMinisters: fetched %d ministers", len(list))
	return models.FromDomainMinisterList(list), nil
}

// Create добавляет служителя
func (s *Service) Create(ctx context.Context, req *models.CreateMinisterRequest) (*models.MinisterResponse, error) {
	s.logger.Info("CreateMinister: name=%q", req.Name)

	m, err := validateCreate(req)
	if err != nil {
		s.logger.Warn("CreateMinister: validation failed: %v", err)
		return nil, err
	}

	created, err := s.repo.Create(ctx, m)
	if err != nil {
		if errors.Is(err, ministerRepo.ErrDuplicateUserID) {
			s.logger.Warn("CreateMinister: user %s is already linked", *m.UserID)
			return nil, ErrDuplicateUserID
		}
		s.logger.Error("CreateMinister: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.InvalidateCache()
	s.publisher.Publish(ctx, domain.ReasonMinisterAdded)

	s.logger.Info("CreateMinister: created minister id=%s", created.ID)
	return models.FromDomainMinister(created), nil
}

// Delete удаляет служителя; его слоты освобождаются в хранилище
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("DeleteMinister: id=%s", id)

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ministerRepo.ErrMinisterNotFound) {
			s.logger.Warn("DeleteMinister: minister id=%s not found", id)
			return ErrMinisterNotFound
		}
		s.logger.Error("DeleteMinister: repository error for id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.InvalidateCache()
	s.publisher.Publish(ctx, domain.ReasonMinisterDeleted)

	s.logger.Info("DeleteMinister: deleted minister id=%s", id)
	return nil
}

// GetByID возвращает служителя по ID
func (s *Service) GetByID(ctx context.Context, id string) (*domain.Minister, error) {
	return s.cached(keyByID+id, func() (*domain.Minister, error) {
		return s.repo.GetByID(ctx, id)
	})
}

// GetByUserID возвращает служителя, привязанного к пользователю
func (s *Service) GetByUserID(ctx context.Context, userID string) (*domain.Minister, error) {
	return s.cached(keyByUser+userID, func() (*domain.Minister, error) {
		return s.repo.GetByUserID(ctx, userID)
	})
}

func (s *Service) cached(key string, load func() (*domain.Minister, error)) (*domain.Minister, error) {
	if m, ok := s.cache.Get(key); ok {
		return m, nil
	}

	m, err := load()
	if err != nil {
		if errors.Is(err, ministerRepo.ErrMinisterNotFound) {
			return nil, ErrMinisterNotFound
		}
		s.logger.Error("GetMinister: repository error for %s: %v", key, err)
		return nil, fmt.Errorf("%w: lookup %s: %v", ErrInternal, key, err)
	}

	s.cache.Add(key, m)
	return m, nil
}

// InvalidateCache сбрасывает кэш служителей
func (s *Service) InvalidateCache() {
	s.cache.Purge()
}

func validateCreate(req *models.CreateMinisterRequest) (*domain.Minister, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > maxNameLength {
		return nil, fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}

	m := &domain.Minister{Name: name}

	if req.Email != nil && strings.TrimSpace(*req.Email) != "" {
		email := strings.TrimSpace(*req.Email)
		if _, err := mail.ParseAddress(email); err != nil {
			return nil, fmt.Errorf("%w: invalid email: %v", ErrInvalidInput, err)
		}
		m.Email = &email
	}

	if req.UserID != nil && strings.TrimSpace(*req.UserID) != "" {
		userID := strings.TrimSpace(*req.UserID)
		m.UserID = &userID
	}

	return m, nil
}
