package get_revision

import (
	"net/http"

	"github.com/m04kA/SMC-MinisterSchedule/internal/api/handlers"
)

// RevisionSource счетчик изменений календаря
type RevisionSource interface {
	Revision() uint64
}

// RevisionResponse HTTP response model
type RevisionResponse struct {
	Revision uint64 `json:"revision"`
}

type Handler struct {
	source RevisionSource
}

func NewHandler(source RevisionSource) *Handler {
	return &Handler{source: source}
}

// Handle GET /api/v1/calendar/revision
// Клиенты опрашивают ревизию и перечитывают расписание, когда она меняется
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, RevisionResponse{Revision: h.source.Revision()})
}
