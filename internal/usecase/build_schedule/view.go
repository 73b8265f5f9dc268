package build_schedule

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-MinisterSchedule/internal/domain"
)

// BuildRange собирает numberOfDays дней начиная со start
// Службы дня упорядочены по времени, затем по названию; слоты - по позиции
func BuildRange(
	start time.Time,
	numberOfDays int,
	defs []*domain.ServiceTime,
	slots []*domain.MinisterSlot,
	now time.Time,
) []domain.DayView {
	today := domain.NormalizeDate(now)
	first := domain.NormalizeDate(start)

	days := make([]domain.DayView, 0, numberOfDays)
	for i := 0; i < numberOfDays; i++ {
		date := domain.AddDays(first, i)

		services := domain.OccurringOn(defs, date)
		sort.SliceStable(services, func(a, b int) bool {
			if services[a].Time != services[b].Time {
				return services[a].Time.IsBefore(services[b].Time)
			}
			return services[a].Name < services[b].Name
		})

		day := domain.DayView{
			Date:           date,
			IsToday:        domain.SameDay(date, today),
			IsCurrentMonth: date.Year() == today.Year() && date.Month() == today.Month(),
			Services:       make([]domain.ServiceSlots, 0, len(services)),
		}
		for _, service := range services {
			day.Services = append(day.Services, domain.ServiceSlots{
				Service: service,
				Slots:   slotsOf(slots, service.ID, date),
			})
		}
		days = append(days, day)
	}

	return days
}

func slotsOf(slots []*domain.MinisterSlot, serviceID string, date time.Time) []*domain.MinisterSlot {
	result := make([]*domain.MinisterSlot, 0)
	for _, s := range slots {
		if s.BelongsTo(serviceID, date) {
			result = append(result, s)
		}
	}
	sort.Slice(result, func(a, b int) bool {
		return result[a].Position < result[b].Position
	})
	return result
}

// GroupWeeks режет дни на недели по 7, начиная с первого дня
func GroupWeeks(days []domain.DayView) []domain.Week {
	weeks := make([]domain.Week, 0, (len(days)+domain.DaysInWeek-1)/domain.DaysInWeek)
	for i := 0; i < len(days); i += domain.DaysInWeek {
		end := i + domain.DaysInWeek
		if end > len(days) {
			end = len(days)
		}
		weeks = append(weeks, domain.Week(days[i:end]))
	}
	return weeks
}

// FilterForMinister оставляет только слоты служителя
// Дни и службы сохраняются, даже если слотов не осталось
func FilterForMinister(days []domain.DayView, ministerID string) []domain.DayView {
	result := make([]domain.DayView, 0, len(days))
	for _, day := range days {
		filtered := day
		filtered.Services = make([]domain.ServiceSlots, 0, len(day.Services))
		for _, ss := range day.Services {
			own := make([]*domain.MinisterSlot, 0)
			for _, s := range ss.Slots {
				if s.IsAssignedTo(ministerID) {
					own = append(own, s)
				}
			}
			filtered.Services = append(filtered.Services, domain.ServiceSlots{Service: ss.Service, Slots: own})
		}
		result = append(result, filtered)
	}
	return result
}
