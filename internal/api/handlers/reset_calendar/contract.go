package reset_calendar

import (
	"context"

	"github.com/m04kA/SMC-MinisterSchedule/internal/service/servicetimes/models"
)

type ServiceTimeService interface {
	Reset(ctx context.Context) (*models.ResetResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
