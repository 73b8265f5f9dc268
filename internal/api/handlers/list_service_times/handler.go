package list_service_times

import (
	"net/http"

	"github.com/m04kA/SMC-MinisterSchedule/internal/api/handlers"
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

// Handle GET /api/v1/service-times
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListAll(r.Context())
	if err != nil {
		h.logger.Error("GET /service-times - Failed to list service times: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, list)
}
