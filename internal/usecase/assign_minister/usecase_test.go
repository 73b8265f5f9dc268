package assign_minister_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MinisterSchedule/internal/domain"
	"github.com/m04kA/SMC-MinisterSchedule/internal/infra/storage/slot"
	"github.com/m04kA/SMC-MinisterSchedule/internal/testfixtures"
	"github.com/m04kA/SMC-MinisterSchedule/internal/usecase/assign_minister"
	"github.com/m04kA/SMC-MinisterSchedule/pkg/txmanager"
)

type fixture struct {
	env    *testfixtures.Env
	uc     *assign_minister.UseCase
	first  *domain.MinisterSlot
	second *domain.MinisterSlot
	anna   *domain.Minister
	marco  *domain.Minister
}

func setup(t *testing.T) *fixture {
	t.Helper()

	env := testfixtures.NewEnv(t)
	sunday := testfixtures.Day(2024, 1, 7)
	mass := env.AddServiceTime(t, &domain.ServiceTime{Date: sunday, Time: "09:00", Name: "Mass", IsRecurring: true, Positions: 2})

	return &fixture{
		env:    env,
		uc:     assign_minister.NewUseCase(env.Slots, env.Ministers, env.TxManager, env.Publisher, env.Logger),
		first:  env.AddSlot(t, mass.ID, sunday, 1),
		second: env.AddSlot(t, mass.ID, sunday, 2),
		anna:   env.AddMinister(t, "Anna", nil),
		marco:  env.AddMinister(t, "Marco", nil),
	}
}

func TestAssign_SetsMinisterAndPublishes(t *testing.T) {
	f := setup(t)

	resp, err := f.uc.Execute(context.Background(), &assign_minister.Request{SlotID: f.first.ID, MinisterID: f.anna.ID})
	require.NoError(t, err)

	require.NotNil(t, resp.Slot.MinisterID)
	assert.Equal(t, f.anna.ID, *resp.Slot.MinisterID)
	require.NotNil(t, resp.Slot.MinisterName)
	assert.Equal(t, "Anna", *resp.Slot.MinisterName)
	assert.Equal(t, []string{domain.ReasonSlotAssigned}, f.env.Publisher.Reasons())
}

func TestAssign_RejectsSecondSlotOfSameOccurrence(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.uc.Execute(ctx, &assign_minister.Request{SlotID: f.first.ID, MinisterID: f.anna.ID})
	require.NoError(t, err)

	_, err = f.uc.Execute(ctx, &assign_minister.Request{SlotID: f.second.ID, MinisterID: f.anna.ID})
	assert.ErrorIs(t, err, assign_minister.ErrAlreadyAssigned)

	// the target slot itself counts
	_, err = f.uc.Execute(ctx, &assign_minister.Request{SlotID: f.first.ID, MinisterID: f.anna.ID})
	assert.ErrorIs(t, err, assign_minister.ErrAlreadyAssigned)

	second, err := f.env.Slots.GetByID(ctx, f.second.ID)
	require.NoError(t, err)
	assert.True(t, second.IsOpen())
	assert.Len(t, f.env.Publisher.Reasons(), 1)
}

func TestAssign_AllowsReassignToAnotherMinister(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.uc.Execute(ctx, &assign_minister.Request{SlotID: f.first.ID, MinisterID: f.anna.ID})
	require.NoError(t, err)

	resp, err := f.uc.Execute(ctx, &assign_minister.Request{SlotID: f.first.ID, MinisterID: f.marco.ID})
	require.NoError(t, err)
	assert.True(t, resp.Slot.IsAssignedTo(f.marco.ID))

	// anna is free again for this occurrence
	_, err = f.uc.Execute(ctx, &assign_minister.Request{SlotID: f.second.ID, MinisterID: f.anna.ID})
	require.NoError(t, err)
}

func TestAssign_SameMinisterOnAnotherDate(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	nextSunday := f.env.AddSlot(t, f.first.ServiceID, testfixtures.Day(2024, 1, 14), 1)

	_, err := f.uc.Execute(ctx, &assign_minister.Request{SlotID: f.first.ID, MinisterID: f.anna.ID})
	require.NoError(t, err)
	_, err = f.uc.Execute(ctx, &assign_minister.Request{SlotID: nextSunday.ID, MinisterID: f.anna.ID})
	require.NoError(t, err)
}

func TestAssign_NotFound(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.uc.Execute(ctx, &assign_minister.Request{SlotID: uuid.NewString(), MinisterID: f.anna.ID})
	assert.ErrorIs(t, err, assign_minister.ErrSlotNotFound)

	_, err = f.uc.Execute(ctx, &assign_minister.Request{SlotID: f.first.ID, MinisterID: uuid.NewString()})
	assert.ErrorIs(t, err, assign_minister.ErrMinisterNotFound)

	_, err = f.uc.Execute(ctx, &assign_minister.Request{SlotID: f.first.ID, MinisterID: ""})
	assert.ErrorIs(t, err, assign_minister.ErrInvalidInput)

	slot, err := f.env.Slots.GetByID(ctx, f.first.ID)
	require.NoError(t, err)
	assert.True(t, slot.IsOpen())
	assert.Empty(t, f.env.Publisher.Reasons())
}

type conflictingSlots struct {
	*slot.Repository
}

func (conflictingSlots) UpdateAssignment(context.Context, string, *string) error {
	return slot.ErrConflict
}

type rejectingCommit struct {
	inner assign_minister.TransactionManager
}

func (r rejectingCommit) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := r.inner.DoSerializable(ctx, fn); err != nil {
		return err
	}
	return fmt.Errorf("%w: pq: could not serialize access due to read/write dependencies", txmanager.ErrSerialization)
}

func TestAssign_ConcurrentUpdateIsRetryableConflict(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	req := &assign_minister.Request{SlotID: f.first.ID, MinisterID: f.anna.ID}

	uc := assign_minister.NewUseCase(conflictingSlots{f.env.Slots}, f.env.Ministers, f.env.TxManager, f.env.Publisher, f.env.Logger)
	_, err := uc.Execute(ctx, req)
	assert.ErrorIs(t, err, assign_minister.ErrConflict)
	assert.NotErrorIs(t, err, assign_minister.ErrInternal)

	uc = assign_minister.NewUseCase(f.env.Slots, f.env.Ministers, rejectingCommit{f.env.TxManager}, f.env.Publisher, f.env.Logger)
	_, err = uc.Execute(ctx, req)
	assert.ErrorIs(t, err, assign_minister.ErrConflict)

	assert.Empty(t, f.env.Publisher.Reasons())
}
