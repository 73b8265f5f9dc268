package assign_minister

import (
	"context"

	"github.com/m04kA/SMC-MinisterSchedule/internal/domain"
	assignMinister "github.com/m04kA/SMC-MinisterSchedule/internal/usecase/assign_minister"
)

type AssignMinisterUseCase interface {
	Execute(ctx context.Context, req *assignMinister.Request) (*assignMinister.Response, error)
}

type SlotService interface {
	GetByID(ctx context.Context, id string) (*domain.MinisterSlot, error)
}

type MinisterService interface {
	GetByUserID(ctx context.Context, userID string) (*domain.Minister, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
