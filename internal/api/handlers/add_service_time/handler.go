package add_service_time

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-MinisterSchedule/internal/api/handlers"
	"github.com/m04kA/SMC-MinisterSchedule/internal/service/servicetimes"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные данные службы: время HH:MM, непустое название, от 1 до 20 позиций"
	msgAlreadyExists      = "разовая служба с таким временем и названием на эту дату уже есть"
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

// Handle POST /api/v1/service-times
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AddServiceTimeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /service-times - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /service-times - Invalid date %q: %v", req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	created, err := h.service.Add(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, servicetimes.ErrInvalidInput):
			h.logger.Warn("POST /service-times - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, servicetimes.ErrAlreadyExists):
			h.logger.Warn("POST /service-times - Duplicate one-off service: %v", err)
			handlers.RespondConflict(w, msgAlreadyExists)

		default:
			h.logger.Error("POST /service-times - Failed to add service time: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /service-times - Service time created: id=%s, date=%s, time=%s",
		created.ID, created.Date, created.Time)
	handlers.RespondJSON(w, http.StatusCreated, created)
}
