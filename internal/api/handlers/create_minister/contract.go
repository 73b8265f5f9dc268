package create_minister

import (
	"context"

	"github.com/m04kA/SMC-MinisterSchedule/internal/service/ministers/models"
)

type MinisterService interface {
	Create(ctx context.Context, req *models.CreateMinisterRequest) (*models.MinisterResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
