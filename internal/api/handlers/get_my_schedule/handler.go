package get_my_schedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-MinisterSchedule/internal/api/handlers"
	"github.com/m04kA/SMC-MinisterSchedule/internal/api/handlers/get_schedule"
	"github.com/m04kA/SMC-MinisterSchedule/internal/api/middleware"
	"github.com/m04kA/SMC-MinisterSchedule/internal/service/ministers"
	buildSchedule "github.com/m04kA/SMC-MinisterSchedule/internal/usecase/build_schedule"
)

const (
	msgUnauthorized     = "пользователь не определен"
	msgInvalidQuery     = "некорректные параметры: start в формате YYYY-MM-DD, days - целое число"
	msgInvalidRange     = "некорректный диапазон дней"
	msgMinisterNotFound = "пользователь не привязан к служителю"
)

type Handler struct {
	useCase   BuildScheduleUseCase
	ministers MinisterService
	logger    Logger
}

func NewHandler(useCase BuildScheduleUseCase, ministerService MinisterService, logger Logger) *Handler {
	return &Handler{
		useCase:   useCase,
		ministers: ministerService,
		logger:    logger,
	}
}

// Handle GET /api/v1/me/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	req, err := get_schedule.ParseQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /me/schedule - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	minister, err := h.ministers.GetByUserID(r.Context(), user.ID)
	if err != nil {
		if errors.Is(err, ministers.ErrMinisterNotFound) {
			h.logger.Warn("GET /me/schedule - No minister linked: user_id=%s", user.ID)
			handlers.RespondNotFound(w, msgMinisterNotFound)
			return
		}
		h.logger.Error("GET /me/schedule - Failed to get minister: user_id=%s, error=%v", user.ID, err)
		handlers.RespondInternalError(w)
		return
	}
	req.MinisterID = &minister.ID

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, buildSchedule.ErrInvalidInput):
			h.logger.Warn("GET /me/schedule - Invalid range: days=%d", req.NumberOfDays)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /me/schedule - Failed to build schedule: user_id=%s, error=%v", user.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /me/schedule - Schedule built: user_id=%s, minister_id=%s", user.ID, minister.ID)
	handlers.RespondJSON(w, http.StatusOK, get_schedule.FromUseCaseResponse(result))
}
