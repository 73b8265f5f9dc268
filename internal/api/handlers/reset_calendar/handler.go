package reset_calendar

import (
	"net/http"

	"github.com/m04kA/SMC-MinisterSchedule/internal/api/handlers"
	"github.com/m04kA/SMC-MinisterSchedule/internal/api/middleware"
)

type Handler struct {
	service ServiceTimeService
	logger  Logger
}

func NewHandler(service ServiceTimeService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/reset
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := ""
	if user, ok := middleware.UserFromContext(r.Context()); ok {
		userID = user.ID
	}

	result, err := h.service.Reset(r.Context())
	if err != nil {
		h.logger.Error("POST /admin/reset - Failed to reset calendar: user_id=%s, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Warn("POST /admin/reset - Calendar reset by user_id=%s: slots=%d, service_times=%d",
		userID, result.DeletedSlots, result.DeletedServiceTimes)
	handlers.RespondJSON(w, http.StatusOK, result)
}
