package build_schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MinisterSchedule/internal/domain"
	"github.com/m04kA/SMC-MinisterSchedule/internal/testfixtures"
	"github.com/m04kA/SMC-MinisterSchedule/internal/usecase/assign_minister"
	"github.com/m04kA/SMC-MinisterSchedule/internal/usecase/ensure_slots"
	"github.com/m04kA/SMC-MinisterSchedule/pkg/ptr"
)

func newTestUseCase(env *testfixtures.Env, now time.Time, fallback ensure_slots.FallbackPolicy) *UseCase {
	materializer := ensure_slots.NewUseCase(env.Slots, env.ServiceTimes, fallback, env.Logger)
	uc := NewUseCase(env.ServiceTimes, env.Slots, materializer, Settings{DefaultDays: 21, MaxDays: 92}, env.Logger)
	uc.timeProvider = testfixtures.NewClock(now)
	return uc
}

func TestExecute_ThreeWeeksOfSundays(t *testing.T) {
	env := testfixtures.NewEnv(t)
	ctx := context.Background()

	sunday := testfixtures.Day(2024, 1, 7)
	env.AddServiceTime(t, &domain.ServiceTime{Date: sunday, Time: "09:00", Name: "Mass", IsRecurring: true, Positions: 2})
	anna := env.AddMinister(t, "Anna", nil)

	uc := newTestUseCase(env, time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC), ensure_slots.FallbackPolicy{})

	resp, err := uc.Execute(ctx, &Request{StartDate: sunday})
	require.NoError(t, err)
	require.Len(t, resp.Days, 21)
	require.Len(t, resp.Weeks, 3)
	assert.True(t, resp.Days[3].IsToday)

	for i, day := range resp.Days {
		if day.Date.Weekday() != time.Sunday {
			assert.Empty(t, day.Services, day.Date.Format(domain.DateFormat))
			continue
		}
		require.Len(t, day.Services, 1, "day %d", i)
		slots := day.Services[0].Slots
		require.Len(t, slots, 2)
		assert.Equal(t, 1, slots[0].Position)
		assert.Equal(t, 2, slots[1].Position)
		assert.True(t, slots[0].IsOpen())
	}

	stored, err := env.Slots.List(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, 6)

	// assign the second Sunday and rebuild
	target := resp.Days[7].Services[0].Slots[0]
	assign := assign_minister.NewUseCase(env.Slots, env.Ministers, env.TxManager, env.Publisher, env.Logger)
	_, err = assign.Execute(ctx, &assign_minister.Request{SlotID: target.ID, MinisterID: anna.ID})
	require.NoError(t, err)

	resp, err = uc.Execute(ctx, &Request{StartDate: sunday})
	require.NoError(t, err)

	slot := resp.Days[7].Services[0].Slots[0]
	assert.Equal(t, target.ID, slot.ID)
	require.NotNil(t, slot.MinisterName)
	assert.Equal(t, "Anna", *slot.MinisterName)

	stored, err = env.Slots.List(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, 6)

	own, err := uc.Execute(ctx, &Request{StartDate: sunday, MinisterID: ptr.Ptr(anna.ID)})
	require.NoError(t, err)
	assert.Empty(t, own.Days[0].Services[0].Slots)
	assert.Len(t, own.Days[7].Services[0].Slots, 1)
}

func TestExecute_DefaultsToToday(t *testing.T) {
	env := testfixtures.NewEnv(t)
	uc := newTestUseCase(env, time.Date(2024, 5, 2, 23, 0, 0, 0, time.UTC), ensure_slots.FallbackPolicy{})

	resp, err := uc.Execute(context.Background(), &Request{NumberOfDays: 3})
	require.NoError(t, err)
	assert.Equal(t, testfixtures.Day(2024, 5, 2), resp.StartDate)
	require.Len(t, resp.Days, 3)
	assert.True(t, resp.Days[0].IsToday)
}

func TestExecute_RejectsRangeAboveMax(t *testing.T) {
	env := testfixtures.NewEnv(t)
	uc := newTestUseCase(env, time.Now(), ensure_slots.FallbackPolicy{})

	_, err := uc.Execute(context.Background(), &Request{NumberOfDays: 93})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{NumberOfDays: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_FallbackFillsEmptySundayOnce(t *testing.T) {
	env := testfixtures.NewEnv(t)
	ctx := context.Background()

	policy := ensure_slots.FallbackPolicy{
		Enabled:  true,
		Weekdays: []time.Weekday{time.Sunday},
		Services: []ensure_slots.FallbackService{
			{Time: "09:00", Name: "Santa Messa Mattutina", Positions: 2},
			{Time: "18:00", Name: "Santa Messa Vespertina", Positions: 2},
		},
	}
	uc := newTestUseCase(env, time.Date(2024, 1, 7, 8, 0, 0, 0, time.UTC), policy)

	for i := 0; i < 2; i++ {
		resp, err := uc.Execute(ctx, &Request{StartDate: testfixtures.Day(2024, 1, 7), NumberOfDays: 7})
		require.NoError(t, err)
		require.Len(t, resp.Days[0].Services, 2)
		assert.Equal(t, "Santa Messa Mattutina", resp.Days[0].Services[0].Service.Name)
		assert.Empty(t, resp.Days[1].Services)
	}

	defs, err := env.ServiceTimes.List(ctx)
	require.NoError(t, err)
	assert.Len(t, defs, 2)
	for _, d := range defs {
		assert.False(t, d.IsRecurring)
	}

	slots, err := env.Slots.List(ctx)
	require.NoError(t, err)
	assert.Len(t, slots, 4)
}
