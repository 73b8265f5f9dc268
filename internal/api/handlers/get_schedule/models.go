package get_schedule

import (
	"net/url"
	"strconv"

	"github.com/m04kA/SMC-MinisterSchedule/internal/api/handlers"
	"github.com/m04kA/SMC-MinisterSchedule/internal/domain"
	buildSchedule "github.com/m04kA/SMC-MinisterSchedule/internal/usecase/build_schedule"
)

// ScheduleResponse HTTP response model
type ScheduleResponse struct {
	StartDate string                `json:"startDate"`
	Today     string                `json:"today"`
	Weeks     [][]*handlers.DayView `json:"weeks"`
}

// ParseQuery разбирает ?start=YYYY-MM-DD&days=N
func ParseQuery(q url.Values) (*buildSchedule.Request, error) {
	start, err := handlers.ParseDateParam(q.Get("start"))
	if err != nil {
		return nil, err
	}

	req := &buildSchedule.Request{StartDate: start}
	if v := q.Get("days"); v != "" {
		days, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		req.NumberOfDays = days
	}
	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *buildSchedule.Response) *ScheduleResponse {
	return &ScheduleResponse{
		StartDate: resp.StartDate.Format(domain.DateFormat),
		Today:     resp.Today.Format(domain.DateFormat),
		Weeks:     handlers.FromDomainWeeks(resp.Weeks),
	}
}
