package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/m04kA/SMC-MinisterSchedule/pkg/sqlbuilder"
)

// ErrOpen возвращается, когда не удалось открыть или проверить соединение
var ErrOpen = errors.New("database: failed to open")

// PoolConfig настройки connection pool
type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// sqlitePragmas применяются драйвером modernc к каждому новому соединению
var sqlitePragmas = []string{
	"foreign_keys(1)",
	"busy_timeout(5000)",
}

// Open открывает БД для драйвера и проверяет соединение
// Для SQLite пул ограничен одним долгоживущим соединением (база ":memory:" живет,
// пока живо соединение); PRAGMA передаются через DSN и действуют на каждое соединение
func Open(ctx context.Context, driver, dsn string, pool PoolConfig) (*sql.DB, error) {
	if driver == sqlbuilder.DriverSQLite {
		dsn = withSQLitePragmas(dsn)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpen, err)
	}

	if driver == sqlbuilder.DriverSQLite {
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)
	} else {
		db.SetMaxOpenConns(pool.MaxOpenConns)
		db.SetMaxIdleConns(pool.MaxIdleConns)
		db.SetConnMaxLifetime(pool.ConnMaxLifetime)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: ping: %v", ErrOpen, err)
	}

	return db, nil
}

func withSQLitePragmas(dsn string) string {
	params := make([]string, 0, len(sqlitePragmas))
	for _, p := range sqlitePragmas {
		params = append(params, "_pragma="+p)
	}

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + strings.Join(params, "&")
}
