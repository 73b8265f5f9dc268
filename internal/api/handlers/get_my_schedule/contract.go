package get_my_schedule

import (
	"context"

	"github.com/m04kA/SMC-MinisterSchedule/internal/domain"
	buildSchedule "github.com/m04kA/SMC-MinisterSchedule/internal/usecase/build_schedule"
)

type BuildScheduleUseCase interface {
	Execute(ctx context.Context, req *buildSchedule.Request) (*buildSchedule.Response, error)
}

type MinisterService interface {
	GetByUserID(ctx context.Context, userID string) (*domain.Minister, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
