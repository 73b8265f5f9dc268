// Package storagetest поднимает SQLite в памяти с примененными миграциями для тестов репозиториев
package storagetest

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MinisterSchedule/internal/infra/storage/database"
	"github.com/m04kA/SMC-MinisterSchedule/internal/infra/storage/migrations"
	"github.com/m04kA/SMC-MinisterSchedule/pkg/dbmetrics"
	"github.com/m04kA/SMC-MinisterSchedule/pkg/sqlbuilder"
)

// NewSQLite возвращает обернутую БД в памяти; закрывается вместе с тестом
func NewSQLite(t *testing.T) *dbmetrics.DB {
	t.Helper()

	ctx := context.Background()
	db, err := database.Open(ctx, sqlbuilder.DriverSQLite, ":memory:", database.PoolConfig{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, migrations.Run(ctx, db, sqlbuilder.DriverSQLite, nil))

	return dbmetrics.Wrap(db, nil)
}

// Exec выполняет произвольный SQL (подготовка данных в тестах)
func Exec(t *testing.T, db *dbmetrics.DB, query string, args ...interface{}) sql.Result {
	t.Helper()
	res, err := db.ExecContext(context.Background(), query, args...)
	require.NoError(t, err)
	return res
}
