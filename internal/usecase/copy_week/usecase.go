package copy_week

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-MinisterSchedule/internal/domain"
	"github.com/m04kA/SMC-MinisterSchedule/internal/infra/storage/servicetime"
)

// UseCase use case копирования разовых служб одной недели в другую
// Назначения служителей не копируются
type UseCase struct {
	serviceTimeRepo ServiceTimeRepository
	publisher       Publisher
	weekStart       time.Weekday
	location        *time.Location
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	serviceTimeRepo ServiceTimeRepository,
	publisher Publisher,
	weekStart time.Weekday,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		serviceTimeRepo: serviceTimeRepo,
		publisher:       publisher,
		weekStart:       weekStart,
		location:        location,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute копирует неделю
// Идемпотентна: повторный вызов не создает дубликатов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Недели по умолчанию
	source := req.SourceWeekStart
	if source.IsZero() {
		source = domain.StartOfWeek(uc.timeProvider.Now().In(uc.location), uc.weekStart)
	}
	source = domain.NormalizeDate(source)

	target := req.TargetWeekStart
	if target.IsZero() {
		target = domain.AddDays(source, domain.DaysInWeek)
	}
	target = domain.NormalizeDate(target)

	uc.logger.Info("CopyWeek: source=%s, target=%s", source.Format(domain.DateFormat), target.Format(domain.DateFormat))

	if domain.SameDay(source, target) {
		uc.logger.Warn("CopyWeek: source and target weeks are the same")
		return nil, fmt.Errorf("%w: source and target weeks must differ", ErrInvalidInput)
	}

	// 2. План
	defs, err := uc.serviceTimeRepo.List(ctx)
	if err != nil {
		uc.logger.Error("CopyWeek: failed to list service times: %v", err)
		return nil, fmt.Errorf("%w: Execute - list service times: %v", ErrInternal, err)
	}

	plan := PlanCopy(domain.WeekDates(source), domain.WeekDates(target), defs)

	// 3. Запись
	created := make([]*domain.ServiceTime, 0, len(plan))
	for _, st := range plan {
		c, err := uc.serviceTimeRepo.Create(ctx, st)
		if errors.Is(err, servicetime.ErrServiceTimeExists) {
			// создана параллельным копированием
			continue
		}
		if err != nil {
			uc.logger.Error("CopyWeek: failed to create %s %s %q: %v",
				st.Date.Format(domain.DateFormat), st.Time, st.Name, err)
			if len(created) > 0 {
				uc.publisher.Publish(ctx, domain.ReasonWeekCopied)
			}
			return nil, fmt.Errorf("%w: Execute - create service time: %v", ErrInternal, err)
		}
		created = append(created, c)
	}

	if len(created) > 0 {
		uc.publisher.Publish(ctx, domain.ReasonWeekCopied)
	}

	uc.logger.Info("CopyWeek: created %d service times", len(created))
	return &Response{
		SourceWeekStart: source,
		TargetWeekStart: target,
		Created:         created,
	}, nil
}
