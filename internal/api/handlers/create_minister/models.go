package create_minister

import "github.com/m04kA/SMC-MinisterSchedule/internal/service/ministers/models"

// CreateMinisterRequest HTTP request model
type CreateMinisterRequest struct {
	Name   string  `json:"name"`
	Email  *string `json:"email,omitempty"`
	UserID *string `json:"userId,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateMinisterRequest) ToServiceRequest() *models.CreateMinisterRequest {
	return &models.CreateMinisterRequest{
		Name:   r.Name,
		Email:  r.Email,
		UserID: r.UserID,
	}
}
