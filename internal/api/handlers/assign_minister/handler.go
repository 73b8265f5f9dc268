package assign_minister

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-MinisterSchedule/internal/api/authz"
	"github.com/m04kA/SMC-MinisterSchedule/internal/api/handlers"
	"github.com/m04kA/SMC-MinisterSchedule/internal/api/middleware"
	"github.com/m04kA/SMC-MinisterSchedule/internal/service/ministers"
	"github.com/m04kA/SMC-MinisterSchedule/internal/service/slots"
	assignMinister "github.com/m04kA/SMC-MinisterSchedule/internal/usecase/assign_minister"
)

const (
	msgUnauthorized       = "пользователь не определен"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMinisterRequired   = "не указан служитель"
	msgSlotNotFound       = "слот не найден"
	msgMinisterNotFound   = "служитель не найден"
	msgForbidden          = "доступ запрещен"
	msgSlotTaken          = "слот уже занят другим служителем"
	msgAlreadyAssigned    = "служитель уже назначен на эту службу в этот день"
	msgConflict           = "слот одновременно изменил другой запрос, повторите попытку"
)

type Handler struct {
	useCase   AssignMinisterUseCase
	slots     SlotService
	ministers MinisterService
	logger    Logger
}

func NewHandler(useCase AssignMinisterUseCase, slotService SlotService, ministerService MinisterService, logger Logger) *Handler {
	return &Handler{
		useCase:   useCase,
		slots:     slotService,
		ministers: ministerService,
		logger:    logger,
	}
}

// Handle POST /api/v1/slots/{slotId}/assign
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slotID := mux.Vars(r)["slotId"]

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req AssignMinisterRequest
	if err := handlers.DecodeOptionalJSON(r, &req); err != nil {
		h.logger.Warn("POST /slots/{id}/assign - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Служитель, привязанный к пользователю (может отсутствовать у администратора)
	caller, err := h.ministers.GetByUserID(r.Context(), user.ID)
	if err != nil && !errors.Is(err, ministers.ErrMinisterNotFound) {
		h.logger.Error("POST /slots/{id}/assign - Failed to get caller minister: user_id=%s, error=%v", user.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	ministerID := ""
	switch {
	case req.MinisterID != nil && *req.MinisterID != "":
		ministerID = *req.MinisterID
	case caller != nil:
		ministerID = caller.ID
	default:
		h.logger.Warn("POST /slots/{id}/assign - Minister not specified: user_id=%s", user.ID)
		handlers.RespondBadRequest(w, msgMinisterRequired)
		return
	}

	slot, err := h.slots.GetByID(r.Context(), slotID)
	if err != nil {
		if errors.Is(err, slots.ErrSlotNotFound) {
			handlers.RespondNotFound(w, msgSlotNotFound)
			return
		}
		h.logger.Error("POST /slots/{id}/assign - Failed to get slot: slot_id=%s, error=%v", slotID, err)
		handlers.RespondInternalError(w)
		return
	}

	if err := authz.CanAssign(user, caller, slot, ministerID); err != nil {
		h.logger.Warn("POST /slots/{id}/assign - Access denied: slot_id=%s, user_id=%s, minister_id=%s: %v",
			slotID, user.ID, ministerID, err)
		if errors.Is(err, authz.ErrSlotTaken) {
			handlers.RespondConflict(w, msgSlotTaken)
			return
		}
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &assignMinister.Request{SlotID: slotID, MinisterID: ministerID})
	if err != nil {
		switch {
		case errors.Is(err, assignMinister.ErrSlotNotFound):
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, assignMinister.ErrMinisterNotFound):
			h.logger.Warn("POST /slots/{id}/assign - Minister not found: minister_id=%s", ministerID)
			handlers.RespondNotFound(w, msgMinisterNotFound)

		case errors.Is(err, assignMinister.ErrAlreadyAssigned):
			h.logger.Warn("POST /slots/{id}/assign - Already assigned: slot_id=%s, minister_id=%s", slotID, ministerID)
			handlers.RespondConflict(w, msgAlreadyAssigned)

		case errors.Is(err, assignMinister.ErrConflict):
			h.logger.Warn("POST /slots/{id}/assign - Concurrent update: slot_id=%s, error=%v", slotID, err)
			handlers.RespondConflict(w, msgConflict)

		case errors.Is(err, assignMinister.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /slots/{id}/assign - Failed to assign: slot_id=%s, minister_id=%s, error=%v",
				slotID, ministerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /slots/{id}/assign - Minister assigned: slot_id=%s, minister_id=%s, by user_id=%s",
		slotID, ministerID, user.ID)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromDomainSlot(result.Slot))
}
