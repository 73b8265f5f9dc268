package handlers

import (
	"time"

	"github.com/m04kA/SMC-MinisterSchedule/internal/domain"
)

// SlotView слот в ответах API
type SlotView struct {
	ID           string  `json:"id"`
	ServiceID    string  `json:"serviceId"`
	Date         string  `json:"date"`
	Position     int     `json:"position"`
	MinisterID   *string `json:"ministerId"`
	MinisterName *string `json:"ministerName"`
	UpdatedAt    string  `json:"updatedAt"`
}

// ServiceView служба дня со слотами
type ServiceView struct {
	ID          string      `json:"id"`
	Time        string      `json:"time"`
	Name        string      `json:"name"`
	IsRecurring bool        `json:"isRecurring"`
	Positions   int         `json:"positions"`
	Slots       []*SlotView `json:"slots"`
}

// DayView день расписания
type DayView struct {
	Date           string         `json:"date"`
	Weekday        string         `json:"weekday"`
	IsToday        bool           `json:"isToday"`
	IsCurrentMonth bool           `json:"isCurrentMonth"`
	Services       []*ServiceView `json:"services"`
}

// FromDomainSlot конвертирует слот
func FromDomainSlot(s *domain.MinisterSlot) *SlotView {
	return &SlotView{
		ID:           s.ID,
		ServiceID:    s.ServiceID,
		Date:         s.Date.Format(domain.DateFormat),
		Position:     s.Position,
		MinisterID:   s.MinisterID,
		MinisterName: s.MinisterName,
		UpdatedAt:    s.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainWeeks конвертирует расписание, сгруппированное по неделям
func FromDomainWeeks(weeks []domain.Week) [][]*DayView {
	result := make([][]*DayView, 0, len(weeks))
	for _, week := range weeks {
		days := make([]*DayView, 0, len(week))
		for _, day := range week {
			days = append(days, FromDomainDay(day))
		}
		result = append(result, days)
	}
	return result
}

// FromDomainDay конвертирует день расписания
func FromDomainDay(day domain.DayView) *DayView {
	services := make([]*ServiceView, 0, len(day.Services))
	for _, ss := range day.Services {
		slots := make([]*SlotView, 0, len(ss.Slots))
		for _, s := range ss.Slots {
			slots = append(slots, FromDomainSlot(s))
		}
		services = append(services, &ServiceView{
			ID:          ss.Service.ID,
			Time:        ss.Service.Time.String(),
			Name:        ss.Service.Name,
			IsRecurring: ss.Service.IsRecurring,
			Positions:   ss.Service.Positions,
			Slots:       slots,
		})
	}

	return &DayView{
		Date:           day.Date.Format(domain.DateFormat),
		Weekday:        day.Date.Weekday().String(),
		IsToday:        day.IsToday,
		IsCurrentMonth: day.IsCurrentMonth,
		Services:       services,
	}
}
