package create_minister

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-MinisterSchedule/internal/api/handlers"
	"github.com/m04kA/SMC-MinisterSchedule/internal/service/ministers"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные служителя"
	msgDuplicateUser      = "пользователь уже привязан к другому служителю"
)

type Handler struct {
	service MinisterService
	logger  Logger
}

func NewHandler(service MinisterService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/ministers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateMinisterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /ministers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.service.Create(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, ministers.ErrInvalidInput):
			h.logger.Warn("POST /ministers - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, ministers.ErrDuplicateUserID):
			handlers.RespondConflict(w, msgDuplicateUser)

		default:
			h.logger.Error("POST /ministers - Failed to create minister: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /ministers - Minister created: id=%s", created.ID)
	handlers.RespondJSON(w, http.StatusCreated, created)
}
