package copy_week

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-MinisterSchedule/internal/api/handlers"
	copyWeek "github.com/m04kA/SMC-MinisterSchedule/internal/usecase/copy_week"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgSameWeek           = "исходная и целевая недели совпадают"
)

type Handler struct {
	useCase CopyWeekUseCase
	logger  Logger
}

func NewHandler(useCase CopyWeekUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/service-times/copy-week
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CopyWeekRequest
	if err := handlers.DecodeOptionalJSON(r, &req); err != nil {
		h.logger.Warn("POST /service-times/copy-week - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /service-times/copy-week - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, copyWeek.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgSameWeek)

		default:
			h.logger.Error("POST /service-times/copy-week - Failed to copy week: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /service-times/copy-week - Week copied: created=%d", len(result.Created))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
