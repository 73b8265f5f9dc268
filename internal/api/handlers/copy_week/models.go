package copy_week

import (
	"github.com/m04kA/SMC-MinisterSchedule/internal/api/handlers"
	"github.com/m04kA/SMC-MinisterSchedule/internal/domain"
	servicetimeModels "github.com/m04kA/SMC-MinisterSchedule/internal/service/servicetimes/models"
	copyWeek "github.com/m04kA/SMC-MinisterSchedule/internal/usecase/copy_week"
)

// CopyWeekRequest HTTP request model
// Пустые даты: копируется текущая неделя в следующую
type CopyWeekRequest struct {
	SourceWeekStart string `json:"sourceWeekStart,omitempty"`
	TargetWeekStart string `json:"targetWeekStart,omitempty"`
}

// CopyWeekResponse HTTP response model
type CopyWeekResponse struct {
	SourceWeekStart string                                   `json:"sourceWeekStart"`
	TargetWeekStart string                                   `json:"targetWeekStart"`
	Created         []*servicetimeModels.ServiceTimeResponse `json:"created"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CopyWeekRequest) ToUseCaseRequest() (*copyWeek.Request, error) {
	source, err := handlers.ParseDateParam(r.SourceWeekStart)
	if err != nil {
		return nil, err
	}
	target, err := handlers.ParseDateParam(r.TargetWeekStart)
	if err != nil {
		return nil, err
	}
	return &copyWeek.Request{SourceWeekStart: source, TargetWeekStart: target}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *copyWeek.Response) *CopyWeekResponse {
	return &CopyWeekResponse{
		SourceWeekStart: resp.SourceWeekStart.Format(domain.DateFormat),
		TargetWeekStart: resp.TargetWeekStart.Format(domain.DateFormat),
		Created:         servicetimeModels.FromDomainServiceTimeList(resp.Created),
	}
}
