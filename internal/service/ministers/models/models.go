package models

import (
	"time"

	"github.com/m04kA/SMC-MinisterSchedule/internal/domain"
)

// CreateMinisterRequest запрос на добавление служителя
type CreateMinisterRequest struct {
	Name   string
	Email  *string
	UserID *string
}

// MinisterResponse служитель в ответах API
type MinisterResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email,omitempty"`
	UserID    *string   `json:"userId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromDomainMinister конвертирует доменную модель в ответ
func FromDomainMinister(m *domain.Minister) *MinisterResponse {
	return &MinisterResponse{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
	}
}

// FromDomainMinisterList конвертирует список служителей
func FromDomainMinisterList(list []*domain.Minister) []*MinisterResponse {
	result := make([]*MinisterResponse, 0, len(list))
	for _, m := range list {
		result = append(result, FromDomainMinister(m))
	}
	return result
}
