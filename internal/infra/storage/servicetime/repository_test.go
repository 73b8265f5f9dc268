package servicetime_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MinisterSchedule/internal/domain"
	"github.com/m04kA/SMC-MinisterSchedule/internal/infra/storage/servicetime"
	"github.com/m04kA/SMC-MinisterSchedule/internal/infra/storage/storagetest"
	"github.com/m04kA/SMC-MinisterSchedule/pkg/sqlbuilder"
)

func newRepo(t *testing.T) *servicetime.Repository {
	return servicetime.NewRepository(storagetest.NewSQLite(t), sqlbuilder.DriverSQLite)
}

func TestRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	created, err := repo.Create(ctx, &domain.ServiceTime{
		Date:        time.Date(2024, 1, 7, 15, 0, 0, 0, time.UTC),
		Time:        "09:00",
		Name:        "Santa Messa Mattutina",
		IsRecurring: true,
		Positions:   2,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC), got.Date)
	assert.Equal(t, "09:00", got.Time.String())
	assert.Equal(t, "Santa Messa Mattutina", got.Name)
	assert.True(t, got.IsRecurring)
	assert.Equal(t, 2, got.Positions)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo := newRepo(t)

	_, err := repo.GetByID(context.Background(), "8d3f0b8e-5a3c-4f57-9d1e-000000000000")
	assert.ErrorIs(t, err, servicetime.ErrServiceTimeNotFound)

	_, err = repo.GetByID(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, servicetime.ErrServiceTimeNotFound)
}

func TestRepository_ListOrdered(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	for _, st := range []*domain.ServiceTime{
		{Date: time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC), Time: "09:00", Name: "B", Positions: 1},
		{Date: time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC), Time: "18:00", Name: "C", Positions: 2},
		{Date: time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC), Time: "09:00", Name: "A", Positions: 3},
	} {
		_, err := repo.Create(ctx, st)
		require.NoError(t, err)
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)

	assert.Equal(t, []string{"A", "C", "B"}, []string{list[0].Name, list[1].Name, list[2].Name})
}

func TestRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	created, err := repo.Create(ctx, &domain.ServiceTime{
		Date: time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC), Time: "09:00", Name: "Mass", Positions: 2,
	})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))
	assert.ErrorIs(t, repo.Delete(ctx, created.ID), servicetime.ErrServiceTimeNotFound)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRepository_DeleteAll(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	for i := 0; i < 3; i++ {
		_, err := repo.Create(ctx, &domain.ServiceTime{
			Date: time.Date(2024, 1, 7+i, 0, 0, 0, 0, time.UTC), Time: "09:00", Name: "Mass", Positions: 2,
		})
		require.NoError(t, err)
	}

	n, err := repo.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestRepository_Create_DuplicateOneOff(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	day := time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC)

	_, err := repo.Create(ctx, &domain.ServiceTime{Date: day, Time: "09:00", Name: "Mass", Positions: 2})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &domain.ServiceTime{Date: day, Time: "09:00", Name: "Mass", Positions: 3})
	assert.ErrorIs(t, err, servicetime.ErrServiceTimeExists)

	_, err = repo.Create(ctx, &domain.ServiceTime{Date: day, Time: "09:00", Name: "Mass", IsRecurring: true, Positions: 2})
	require.NoError(t, err)
}
