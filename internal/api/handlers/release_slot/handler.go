package release_slot

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-MinisterSchedule/internal/api/authz"
	"github.com/m04kA/SMC-MinisterSchedule/internal/api/handlers"
	"github.com/m04kA/SMC-MinisterSchedule/internal/api/middleware"
	"github.com/m04kA/SMC-MinisterSchedule/internal/service/ministers"
	"github.com/m04kA/SMC-MinisterSchedule/internal/service/slots"
	releaseSlot "github.com/m04kA/SMC-MinisterSchedule/internal/usecase/release_slot"
)

const (
	msgUnauthorized = "пользователь не определен"
	msgSlotNotFound = "слот не найден"
	msgForbidden    = "освободить слот может только назначенный служитель или администратор"
	msgReassigned   = "слот уже переназначен другому служителю"
	msgConflict     = "слот одновременно изменил другой запрос, повторите попытку"
)

type Handler struct {
	useCase   ReleaseSlotUseCase
	slots     SlotService
	ministers MinisterService
	logger    Logger
}

func NewHandler(useCase ReleaseSlotUseCase, slotService SlotService, ministerService MinisterService, logger Logger) *Handler {
	return &Handler{
		useCase:   useCase,
		slots:     slotService,
		ministers: ministerService,
		logger:    logger,
	}
}

// Handle POST /api/v1/slots/{slotId}/release
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slotID := mux.Vars(r)["slotId"]

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	slot, err := h.slots.GetByID(r.Context(), slotID)
	if err != nil {
		if errors.Is(err, slots.ErrSlotNotFound) {
			handlers.RespondNotFound(w, msgSlotNotFound)
			return
		}
		h.logger.Error("POST /slots/{id}/release - Failed to get slot: slot_id=%s, error=%v", slotID, err)
		handlers.RespondInternalError(w)
		return
	}

	caller, err := h.ministers.GetByUserID(r.Context(), user.ID)
	if err != nil && !errors.Is(err, ministers.ErrMinisterNotFound) {
		h.logger.Error("POST /slots/{id}/release - Failed to get caller minister: user_id=%s, error=%v", user.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	if err := authz.CanRelease(user, caller, slot); err != nil {
		h.logger.Warn("POST /slots/{id}/release - Access denied: slot_id=%s, user_id=%s", slotID, user.ID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	ucReq := &releaseSlot.Request{SlotID: slotID}
	if !user.IsAdmin() {
		// служитель освобождает только свое место: проверка повторяется в транзакции
		ucReq.ExpectedMinisterID = &caller.ID
	}

	result, err := h.useCase.Execute(r.Context(), ucReq)
	if err != nil {
		switch {
		case errors.Is(err, releaseSlot.ErrSlotNotFound):
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, releaseSlot.ErrConflict):
			h.logger.Warn("POST /slots/{id}/release - Concurrent update: slot_id=%s, error=%v", slotID, err)
			handlers.RespondConflict(w, msgConflict)

		case errors.Is(err, releaseSlot.ErrAssignmentChanged):
			h.logger.Warn("POST /slots/{id}/release - Slot reassigned meanwhile: slot_id=%s, user_id=%s", slotID, user.ID)
			handlers.RespondConflict(w, msgReassigned)

		default:
			h.logger.Error("POST /slots/{id}/release - Failed to release: slot_id=%s, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /slots/{id}/release - Slot released: slot_id=%s, was_assigned=%t, by user_id=%s",
		slotID, result.WasAssigned, user.ID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
