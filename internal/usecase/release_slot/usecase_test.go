package release_slot_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MinisterSchedule/internal/domain"
	"github.com/m04kA/SMC-MinisterSchedule/internal/testfixtures"
	"github.com/m04kA/SMC-MinisterSchedule/internal/usecase/assign_minister"
	"github.com/m04kA/SMC-MinisterSchedule/internal/usecase/release_slot"
)

func TestRelease_AssignReleaseCycle(t *testing.T) {
	env := testfixtures.NewEnv(t)
	ctx := context.Background()

	sunday := testfixtures.Day(2024, 1, 7)
	mass := env.AddServiceTime(t, &domain.ServiceTime{Date: sunday, Time: "09:00", Name: "Mass", IsRecurring: true})
	slot := env.AddSlot(t, mass.ID, sunday, 1)
	anna := env.AddMinister(t, "Anna", nil)
	marco := env.AddMinister(t, "Marco", nil)

	assign := assign_minister.NewUseCase(env.Slots, env.Ministers, env.TxManager, env.Publisher, env.Logger)
	release := release_slot.NewUseCase(env.Slots, env.TxManager, env.Publisher, env.Logger)

	_, err := assign.Execute(ctx, &assign_minister.Request{SlotID: slot.ID, MinisterID: anna.ID})
	require.NoError(t, err)

	resp, err := release.Execute(ctx, &release_slot.Request{SlotID: slot.ID})
	require.NoError(t, err)
	assert.True(t, resp.WasAssigned)
	require.NotNil(t, resp.PreviousMinisterID)
	assert.Equal(t, anna.ID, *resp.PreviousMinisterID)
	assert.True(t, resp.Slot.IsOpen())

	stored, err := env.Slots.GetByID(ctx, slot.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsOpen())

	// releasing an open slot changes nothing
	resp, err = release.Execute(ctx, &release_slot.Request{SlotID: slot.ID})
	require.NoError(t, err)
	assert.False(t, resp.WasAssigned)
	assert.Nil(t, resp.PreviousMinisterID)

	_, err = assign.Execute(ctx, &assign_minister.Request{SlotID: slot.ID, MinisterID: marco.ID})
	require.NoError(t, err)

	assert.Equal(t, []string{
		domain.ReasonSlotAssigned,
		domain.ReasonSlotReleased,
		domain.ReasonSlotAssigned,
	}, env.Publisher.Reasons())
}

func TestRelease_NotFound(t *testing.T) {
	env := testfixtures.NewEnv(t)
	release := release_slot.NewUseCase(env.Slots, env.TxManager, env.Publisher, env.Logger)

	_, err := release.Execute(context.Background(), &release_slot.Request{SlotID: uuid.NewString()})
	assert.ErrorIs(t, err, release_slot.ErrSlotNotFound)

	_, err = release.Execute(context.Background(), &release_slot.Request{SlotID: " "})
	assert.ErrorIs(t, err, release_slot.ErrInvalidInput)
}

func TestRelease_ReassignedSlotIsNotCleared(t *testing.T) {
	env := testfixtures.NewEnv(t)
	ctx := context.Background()

	sunday := testfixtures.Day(2024, 1, 7)
	mass := env.AddServiceTime(t, &domain.ServiceTime{Date: sunday, Time: "09:00", Name: "Mass", IsRecurring: true})
	slot := env.AddSlot(t, mass.ID, sunday, 1)
	anna := env.AddMinister(t, "Anna", nil)
	marco := env.AddMinister(t, "Marco", nil)

	assign := assign_minister.NewUseCase(env.Slots, env.Ministers, env.TxManager, env.Publisher, env.Logger)
	release := release_slot.NewUseCase(env.Slots, env.TxManager, env.Publisher, env.Logger)

	_, err := assign.Execute(ctx, &assign_minister.Request{SlotID: slot.ID, MinisterID: anna.ID})
	require.NoError(t, err)
	// an admin moves the slot to Marco after Anna's release was authorized
	_, err = assign.Execute(ctx, &assign_minister.Request{SlotID: slot.ID, MinisterID: marco.ID})
	require.NoError(t, err)

	_, err = release.Execute(ctx, &release_slot.Request{SlotID: slot.ID, ExpectedMinisterID: &anna.ID})
	assert.ErrorIs(t, err, release_slot.ErrAssignmentChanged)

	stored, err := env.Slots.GetByID(ctx, slot.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsAssignedTo(marco.ID))

	resp, err := release.Execute(ctx, &release_slot.Request{SlotID: slot.ID, ExpectedMinisterID: &marco.ID})
	require.NoError(t, err)
	assert.True(t, resp.WasAssigned)
}
