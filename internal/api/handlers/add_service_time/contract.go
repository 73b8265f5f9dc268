package add_service_time

import (
	"context"

	"github.com/m04kA/SMC-MinisterSchedule/internal/service/servicetimes/models"
)

type ServiceTimeService interface {
	Add(ctx context.Context, req *models.AddServiceTimeRequest) (*models.ServiceTimeResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
