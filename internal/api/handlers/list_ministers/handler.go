package list_ministers

import (
	"net/http"

	"github.com/m04kA/SMC-MinisterSchedule/internal/api/handlers"
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

// Handle GET /api/v1/ministers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /ministers - Failed to list ministers: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, list)
}
