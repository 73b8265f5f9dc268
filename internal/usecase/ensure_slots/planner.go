package ensure_slots

import (
	"time"

	"github.com/m04kA/SMC-MinisterSchedule/internal/domain"
)

// PlanSlots сопоставляет службы дня с уже существующими слотами
// Возвращает существующие слоты этого дня и ключи позиций, которых не хватает
// Для каждой службы позиции 1..Positions
func PlanSlots(date time.Time, defs []*domain.ServiceTime, existing []*domain.MinisterSlot) ([]*domain.MinisterSlot, []domain.SlotKey) {
	day := domain.NormalizeDate(date)

	byKey := make(map[domain.SlotKey]*domain.MinisterSlot, len(existing))
	for _, s := range existing {
		if domain.SameDay(s.Date, day) {
			byKey[s.Key()] = s
		}
	}

	present := make([]*domain.MinisterSlot, 0, len(byKey))
	missing := make([]domain.SlotKey, 0)

	for _, def := range domain.OccurringOn(defs, day) {
		for pos := 1; pos <= def.Positions; pos++ {
			key := domain.SlotKey{ServiceID: def.ID, Date: day, Position: pos}
			if s, ok := byKey[key]; ok {
				present = append(present, s)
				continue
			}
			missing = append(missing, key)
		}
	}

	return present, missing
}
