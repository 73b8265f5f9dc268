package copy_week

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MinisterSchedule/internal/domain"
	"github.com/m04kA/SMC-MinisterSchedule/internal/testfixtures"
)

func newTestUseCase(env *testfixtures.Env, now time.Time) *UseCase {
	uc := NewUseCase(env.ServiceTimes, env.Publisher, time.Sunday, time.UTC, env.Logger)
	uc.timeProvider = testfixtures.NewClock(now)
	return uc
}

func TestExecute_CopiesCurrentWeekToNextByDefault(t *testing.T) {
	env := testfixtures.NewEnv(t)
	ctx := context.Background()

	// Wednesday; current week starts on Sunday 2024-01-07
	uc := newTestUseCase(env, time.Date(2024, 1, 10, 15, 0, 0, 0, time.UTC))

	vigil := env.AddServiceTime(t, &domain.ServiceTime{Date: date(2024, 1, 9), Time: "19:00", Name: "Vigil", Positions: 3})
	env.AddServiceTime(t, &domain.ServiceTime{Date: date(2024, 1, 7), Time: "09:00", Name: "Mass", IsRecurring: true})
	slot := env.AddSlot(t, vigil.ID, vigil.Date, 1)
	anna := env.AddMinister(t, "Anna", nil)
	require.NoError(t, env.Slots.UpdateAssignment(ctx, slot.ID, &anna.ID))

	resp, err := uc.Execute(ctx, &Request{})
	require.NoError(t, err)
	assert.Equal(t, date(2024, 1, 7), resp.SourceWeekStart)
	assert.Equal(t, date(2024, 1, 14), resp.TargetWeekStart)
	require.Len(t, resp.Created, 1)
	assert.Equal(t, date(2024, 1, 16), resp.Created[0].Date)
	assert.NotEmpty(t, resp.Created[0].ID)

	// assignments are not copied
	slots, err := env.Slots.List(ctx)
	require.NoError(t, err)
	assert.Len(t, slots, 1)

	// second run creates nothing and does not publish
	resp, err = uc.Execute(ctx, &Request{})
	require.NoError(t, err)
	assert.Empty(t, resp.Created)

	defs, err := env.ServiceTimes.List(ctx)
	require.NoError(t, err)
	assert.Len(t, defs, 3)
	assert.Equal(t, []string{domain.ReasonWeekCopied}, env.Publisher.Reasons())
}

func TestExecute_ExplicitWeeks(t *testing.T) {
	env := testfixtures.NewEnv(t)
	uc := newTestUseCase(env, time.Now())

	env.AddServiceTime(t, &domain.ServiceTime{Date: date(2024, 3, 3), Time: "10:00", Name: "Palm Sunday"})

	resp, err := uc.Execute(context.Background(), &Request{
		SourceWeekStart: date(2024, 3, 3),
		TargetWeekStart: date(2025, 4, 13),
	})
	require.NoError(t, err)
	require.Len(t, resp.Created, 1)
	assert.Equal(t, date(2025, 4, 13), resp.Created[0].Date)
}

func TestExecute_SameWeekRejected(t *testing.T) {
	env := testfixtures.NewEnv(t)
	uc := newTestUseCase(env, time.Now())

	_, err := uc.Execute(context.Background(), &Request{
		SourceWeekStart: date(2024, 3, 3),
		TargetWeekStart: date(2024, 3, 3),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
