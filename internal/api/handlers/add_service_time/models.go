package add_service_time

import (
	"time"

	"github.com/m04kA/SMC-MinisterSchedule/internal/domain"
	"github.com/m04kA/SMC-MinisterSchedule/internal/service/servicetimes/models"
)

// AddServiceTimeRequest HTTP request model
type AddServiceTimeRequest struct {
	Date        string `json:"date"` // "2025-10-15"
	Time        string `json:"time"` // "09:00"
	Name        string `json:"name"`
	IsRecurring bool   `json:"isRecurring"`
	Positions   *int   `json:"positions,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *AddServiceTimeRequest) ToServiceRequest() (*models.AddServiceTimeRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &models.AddServiceTimeRequest{
		Date:        date,
		Time:        r.Time,
		Name:        r.Name,
		IsRecurring: r.IsRecurring,
		Positions:   r.Positions,
	}, nil
}
