package domain

import (
	"time"

	"github.com/m04kA/SMC-MinisterSchedule/pkg/types"
)

// ServiceTime is a service (Mass) definition: either a one-off service on Date
// or, when IsRecurring, a weekly template for every day sharing Date's weekday.
type ServiceTime struct {
	ID          string
	Date        time.Time // calendar day, midnight UTC
	Time        types.TimeString
	Name        string
	IsRecurring bool
	Positions   int
	CreatedAt   time.Time
}

// OccursOn reports whether the definition yields a service on date
func (s *ServiceTime) OccursOn(date time.Time) bool {
	if SameDay(s.Date, date) {
		return true
	}
	return s.IsRecurring && s.Date.Weekday() == date.Weekday()
}

// SameSlotAs reports whether two definitions describe the same service on the same day
func (s *ServiceTime) SameSlotAs(date time.Time, t types.TimeString, name string) bool {
	return SameDay(s.Date, date) && s.Time == t && s.Name == name
}

// OccurringOn returns every definition that yields a service on date.
// Both sides are compared as calendar days; each definition appears at most once.
func OccurringOn(defs []*ServiceTime, date time.Time) []*ServiceTime {
	day := NormalizeDate(date)
	result := make([]*ServiceTime, 0)
	for _, def := range defs {
		if def.OccursOn(day) {
			result = append(result, def)
		}
	}
	return result
}
