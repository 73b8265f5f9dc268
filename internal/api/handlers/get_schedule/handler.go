package get_schedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-MinisterSchedule/internal/api/handlers"
	"github.com/m04kA/SMC-MinisterSchedule/internal/domain"
	buildSchedule "github.com/m04kA/SMC-MinisterSchedule/internal/usecase/build_schedule"
)

const (
	msgInvalidQuery = "некорректные параметры: start в формате YYYY-MM-DD, days - целое число"
	msgInvalidRange = "некорректный диапазон дней"
)

type Handler struct {
	useCase BuildScheduleUseCase
	logger  Logger
}

func NewHandler(useCase BuildScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := ParseQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /schedule - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, buildSchedule.ErrInvalidInput):
			h.logger.Warn("GET /schedule - Invalid range: days=%d", req.NumberOfDays)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /schedule - Failed to build schedule: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedule - Schedule built: start=%s, days=%d", result.StartDate.Format(domain.DateFormat), len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
