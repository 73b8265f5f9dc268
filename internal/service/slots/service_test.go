package slots_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MinisterSchedule/internal/domain"
	"github.com/m04kA/SMC-MinisterSchedule/internal/service/slots"
	"github.com/m04kA/SMC-MinisterSchedule/internal/testfixtures"
)

func TestService_GetByID(t *testing.T) {
	env := testfixtures.NewEnv(t)
	svc := slots.NewService(env.Slots, env.Logger)

	sunday := testfixtures.Day(2024, 1, 7)
	mass := env.AddServiceTime(t, &domain.ServiceTime{Date: sunday, Time: "09:00", Name: "Mass"})
	created := env.AddSlot(t, mass.ID, sunday, 1)

	got, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.True(t, got.IsOpen())

	_, err = svc.GetByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, slots.ErrSlotNotFound)
}
