package copy_week

import (
	"time"

	"github.com/m04kA/SMC-MinisterSchedule/internal/domain"
)

// PlanCopy строит разовые службы целевой недели по разовым службам исходной
// День i исходной недели переносится на день i целевой. Регулярные службы не копируются,
// они и так проходят каждую неделю. Служба пропускается, если на целевой день уже есть
// служба с тем же временем и названием (среди существующих или уже запланированных)
func PlanCopy(source, target [domain.DaysInWeek]time.Time, defs []*domain.ServiceTime) []*domain.ServiceTime {
	planned := make([]*domain.ServiceTime, 0)

	exists := func(date time.Time, def *domain.ServiceTime) bool {
		for _, d := range defs {
			if d.SameSlotAs(date, def.Time, def.Name) {
				return true
			}
		}
		for _, d := range planned {
			if d.SameSlotAs(date, def.Time, def.Name) {
				return true
			}
		}
		return false
	}

	for i := range source {
		from := domain.NormalizeDate(source[i])
		to := domain.NormalizeDate(target[i])

		for _, def := range defs {
			if def.IsRecurring || !domain.SameDay(def.Date, from) {
				continue
			}
			if exists(to, def) {
				continue
			}
			planned = append(planned, &domain.ServiceTime{
				Date:        to,
				Time:        def.Time,
				Name:        def.Name,
				IsRecurring: false,
				Positions:   def.Positions,
			})
		}
	}

	return planned
}
