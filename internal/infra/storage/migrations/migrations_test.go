package migrations_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MinisterSchedule/internal/infra/storage/database"
	"github.com/m04kA/SMC-MinisterSchedule/internal/infra/storage/migrations"
	"github.com/m04kA/SMC-MinisterSchedule/pkg/sqlbuilder"
)

func TestRun_IsRepeatable(t *testing.T) {
	ctx := context.Background()
	db, err := database.Open(ctx, sqlbuilder.DriverSQLite, ":memory:", database.PoolConfig{})
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, migrations.Run(ctx, db, sqlbuilder.DriverSQLite, nil))
	require.NoError(t, migrations.Run(ctx, db, sqlbuilder.DriverSQLite, nil))

	var count int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM schema_migrations`).Scan(&count))
	assert.Equal(t, 2, count)

	for _, table := range []string{"masses", "ministers", "minister_slots"} {
		var name string
		err := db.QueryRowContext(ctx,
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, table)
	}
}

func TestRun_UnknownDriver(t *testing.T) {
	ctx := context.Background()
	db, err := database.Open(ctx, sqlbuilder.DriverSQLite, ":memory:", database.PoolConfig{})
	require.NoError(t, err)
	defer db.Close()

	err = migrations.Run(ctx, db, "mysql", nil)
	assert.ErrorIs(t, err, migrations.ErrUnsupportedDriver)
}
