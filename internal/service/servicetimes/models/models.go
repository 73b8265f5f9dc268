package models

import (
	"time"

	"github.com/m04kA/SMC-MinisterSchedule/internal/domain"
)

// AddServiceTimeRequest запрос на добавление службы
type AddServiceTimeRequest struct {
	Date        time.Time
	Time        string // HH:MM
	Name        string
	IsRecurring bool
	Positions   *int // nil - значение по умолчанию из конфигурации
}

// ServiceTimeResponse служба в ответах API
type ServiceTimeResponse struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	Weekday     string    `json:"weekday"`
	Time        string    `json:"time"`
	Name        string    `json:"name"`
	IsRecurring bool      `json:"isRecurring"`
	Positions   int       `json:"positions"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ResetResponse итог полного сброса календаря
type ResetResponse struct {
	DeletedSlots        int64 `json:"deletedSlots"`
	DeletedServiceTimes int64 `json:"deletedServiceTimes"`
}

// FromDomainServiceTime конвертирует доменную модель в ответ
func FromDomainServiceTime(st *domain.ServiceTime) *ServiceTimeResponse {
	return &ServiceTimeResponse{
		ID:          st.ID,
		Date:        st.Date.Format(domain.DateFormat),
		Weekday:     st.Date.Weekday().String(),
		Time:        st.Time.String(),
		Name:        st.Name,
		IsRecurring: st.IsRecurring,
		Positions:   st.Positions,
		CreatedAt:   st.CreatedAt,
	}
}

// FromDomainServiceTimeList конвертирует список служб
func FromDomainServiceTimeList(list []*domain.ServiceTime) []*ServiceTimeResponse {
	result := make([]*ServiceTimeResponse, 0, len(list))
	for _, st := range list {
		result = append(result, FromDomainServiceTime(st))
	}
	return result
}
