package release_slot

import (
	"github.com/m04kA/SMC-MinisterSchedule/internal/api/handlers"
	releaseSlot "github.com/m04kA/SMC-MinisterSchedule/internal/usecase/release_slot"
)

// ReleaseSlotResponse HTTP response model
type ReleaseSlotResponse struct {
	Slot               *handlers.SlotView `json:"slot"`
	WasAssigned        bool               `json:"wasAssigned"`
	PreviousMinisterID *string            `json:"previousMinisterId,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *releaseSlot.Response) *ReleaseSlotResponse {
	return &ReleaseSlotResponse{
		Slot:               handlers.FromDomainSlot(resp.Slot),
		WasAssigned:        resp.WasAssigned,
		PreviousMinisterID: resp.PreviousMinisterID,
	}
}
