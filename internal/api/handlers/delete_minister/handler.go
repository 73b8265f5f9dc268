package delete_minister

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-MinisterSchedule/internal/api/handlers"
	"github.com/m04kA/SMC-MinisterSchedule/internal/service/ministers"
)

const msgNotFound = "служитель не найден"

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

// Handle DELETE /api/v1/ministers/{ministerId}
// Слоты служителя освобождаются
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["ministerId"]

	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, ministers.ErrMinisterNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /ministers/{id} - Failed to delete minister: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /ministers/{id} - Minister deleted: id=%s", id)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
