package delete_service_time

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-MinisterSchedule/internal/api/handlers"
)

const msgNotFound = "служба не найдена"

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

// Handle DELETE /api/v1/service-times/{serviceTimeId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["serviceTimeId"]

	deleted, err := h.service.Delete(r.Context(), id)
	if err != nil {
		h.logger.Error("DELETE /service-times/{id} - Failed to delete: id=%s, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}
	if !deleted {
		handlers.RespondNotFound(w, msgNotFound)
		return
	}

	h.logger.Info("DELETE /service-times/{id} - Service time deleted: id=%s", id)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
