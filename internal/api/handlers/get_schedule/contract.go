package get_schedule

import (
	"context"

	buildSchedule "github.com/m04kA/SMC-MinisterSchedule/internal/usecase/build_schedule"
)

type BuildScheduleUseCase interface {
	Execute(ctx context.Context, req *buildSchedule.Request) (*buildSchedule.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
