package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MinisterSchedule/pkg/types"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestOccurringOn_RecurringMatchesSameWeekdayAtAnyDistance(t *testing.T) {
	// 2024-01-01 is a Monday
	monday := &ServiceTime{ID: "mon", Date: day(2024, 1, 1), Time: "09:00", Name: "Mass", IsRecurring: true, Positions: 2}
	defs := []*ServiceTime{monday}

	for _, date := range []time.Time{
		day(2024, 1, 1),
		day(2024, 1, 8),
		day(2031, 6, 2),
		day(2019, 12, 30),
	} {
		got := OccurringOn(defs, date)
		require.Len(t, got, 1, date.Format(DateFormat))
		assert.Equal(t, "mon", got[0].ID)
	}

	assert.Empty(t, OccurringOn(defs, day(2024, 1, 2)))
	assert.Empty(t, OccurringOn(defs, day(2030, 1, 1)))
}

func TestOccurringOn_OneOffMatchesOnlyItsDay(t *testing.T) {
	oneOff := &ServiceTime{ID: "x", Date: day(2024, 3, 10), Time: "18:00", Name: "Vigil", Positions: 2}
	defs := []*ServiceTime{oneOff}

	assert.Len(t, OccurringOn(defs, day(2024, 3, 10)), 1)
	assert.Empty(t, OccurringOn(defs, day(2024, 3, 17)))
}

func TestOccurringOn_IncludedOnceWhenBothRulesMatch(t *testing.T) {
	def := &ServiceTime{ID: "r", Date: day(2024, 1, 7), Time: "09:00", Name: "Mass", IsRecurring: true, Positions: 2}

	got := OccurringOn([]*ServiceTime{def}, day(2024, 1, 7))
	assert.Len(t, got, 1)
}

func TestOccurringOn_IgnoresTimeOfDayAndZone(t *testing.T) {
	def := &ServiceTime{ID: "x", Date: day(2024, 3, 10), Time: "18:00", Name: "Vigil", Positions: 2}

	rome := time.FixedZone("CET", 3600)

	// late evening local time is still the 10th locally
	late := time.Date(2024, 3, 10, 23, 30, 0, 0, rome)
	assert.Len(t, OccurringOn([]*ServiceTime{def}, late), 1)

	early := time.Date(2024, 3, 10, 0, 15, 0, 0, rome)
	assert.Len(t, OccurringOn([]*ServiceTime{def}, early), 1)
}

func TestServiceTime_SameSlotAs(t *testing.T) {
	def := &ServiceTime{Date: day(2024, 3, 10), Time: types.TimeString("09:00"), Name: "Mass"}

	assert.True(t, def.SameSlotAs(day(2024, 3, 10), "09:00", "Mass"))
	assert.False(t, def.SameSlotAs(day(2024, 3, 10), "09:00", "Vigil"))
	assert.False(t, def.SameSlotAs(day(2024, 3, 11), "09:00", "Mass"))
}

func TestStartOfWeek(t *testing.T) {
	// Wednesday 2024-01-10
	wed := day(2024, 1, 10)

	assert.Equal(t, day(2024, 1, 7), StartOfWeek(wed, time.Sunday))
	assert.Equal(t, day(2024, 1, 8), StartOfWeek(wed, time.Monday))
	assert.Equal(t, day(2024, 1, 7), StartOfWeek(day(2024, 1, 7), time.Sunday))
}

func TestWeekDates(t *testing.T) {
	week := WeekDates(day(2024, 12, 29))

	assert.Equal(t, day(2024, 12, 29), week[0])
	assert.Equal(t, day(2025, 1, 4), week[6])
}

func TestIsMinisterAssigned(t *testing.T) {
	m1 := "m1"
	slots := []*MinisterSlot{
		{ID: "a", ServiceID: "s", Date: day(2024, 1, 7), Position: 1, MinisterID: &m1},
		{ID: "b", ServiceID: "s", Date: day(2024, 1, 7), Position: 2},
	}

	assert.True(t, IsMinisterAssigned(slots, "m1", "s", day(2024, 1, 7)))
	assert.False(t, IsMinisterAssigned(slots, "m1", "s", day(2024, 1, 14)))
	assert.False(t, IsMinisterAssigned(slots, "m1", "other", day(2024, 1, 7)))
	assert.False(t, IsMinisterAssigned(slots, "m2", "s", day(2024, 1, 7)))
}
