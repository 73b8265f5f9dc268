package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MinisterSchedule/pkg/sqlbuilder"
)

func TestWithSQLitePragmas(t *testing.T) {
	assert.Equal(t, ":memory:?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", withSQLitePragmas(":memory:"))
	assert.Equal(t, "file:app.db?mode=rwc&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)",
		withSQLitePragmas("file:app.db?mode=rwc"))
}

func TestOpen_SQLitePragmasSurviveReconnect(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, sqlbuilder.DriverSQLite, filepath.Join(t.TempDir(), "schedule.db"), PoolConfig{})
	require.NoError(t, err)
	defer db.Close()

	// every query below runs on a freshly opened connection
	db.SetMaxIdleConns(0)

	for i := 0; i < 3; i++ {
		var foreignKeys, busyTimeout int
		require.NoError(t, db.QueryRowContext(ctx, `PRAGMA foreign_keys`).Scan(&foreignKeys))
		require.NoError(t, db.QueryRowContext(ctx, `PRAGMA busy_timeout`).Scan(&busyTimeout))
		assert.Equal(t, 1, foreignKeys)
		assert.Equal(t, 5000, busyTimeout)
	}
}
