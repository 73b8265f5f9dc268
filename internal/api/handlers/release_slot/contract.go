package release_slot

import (
	"context"

	"github.com/m04kA/SMC-MinisterSchedule/internal/domain"
	releaseSlot "github.com/m04kA/SMC-MinisterSchedule/internal/usecase/release_slot"
)

type ReleaseSlotUseCase interface {
	Execute(ctx context.Context, req *releaseSlot.Request) (*releaseSlot.Response, error)
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
