package list_service_times

import (
	"context"

	"github.com/m04kA/SMC-MinisterSchedule/internal/service/servicetimes/models"
)

type ServiceTimeService interface {
	ListAll(ctx context.Context) ([]*models.ServiceTimeResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
