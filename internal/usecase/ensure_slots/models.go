package ensure_slots

import (
	"time"

	"github.com/m04kA/SMC-MinisterSchedule/pkg/types"
)

// FallbackPolicy резервный список служб для дней, на которые ничего не настроено
// Выключен по умолчанию; включается явно в конфигурации
type FallbackPolicy struct {
	Enabled  bool
	Weekdays []time.Weekday
	Services []FallbackService
}

// FallbackService служба из резервного списка
type FallbackService struct {
	Time      types.TimeString
	Name      string
	Positions int
}

func (p FallbackPolicy) appliesTo(date time.Time) bool {
	if !p.Enabled || len(p.Services) == 0 {
		return false
	}
	for _, wd := range p.Weekdays {
		if wd == date.Weekday() {
			return true
		}
	}
	return false
}
