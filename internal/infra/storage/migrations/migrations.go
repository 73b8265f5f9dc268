package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-MinisterSchedule/pkg/sqlbuilder"
	"github.com/m04kA/SMC-MinisterSchedule/pkg/types"
)

//go:embed postgres/*.sql sqlite/*.sql
var migrationsFS embed.FS

var (
	// ErrUnsupportedDriver возвращается для драйвера без набора миграций
	ErrUnsupportedDriver = errors.New("migrations: unsupported driver")

	// ErrApply возвращается, когда миграция не применилась
	ErrApply = errors.New("migrations: failed to apply migration")
)

const versionsTable = "schema_migrations"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// Run применяет миграции для драйвера в алфавитном порядке имен файлов
// Каждый файл выполняется в отдельной транзакции; примененные версии
// записываются в schema_migrations и повторно не выполняются
func Run(ctx context.Context, db *sql.DB, driver string, logger Logger) error {
	dir, err := dirFor(driver)
	if err != nil {
		return err
	}

	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS `+versionsTable+` (
		version    TEXT PRIMARY KEY,
		applied_at TEXT NOT NULL
	)`); err != nil {
		return fmt.Errorf("%w: create %s: %v", ErrApply, versionsTable, err)
	}

	applied, err := appliedVersions(ctx, db)
	if err != nil {
		return err
	}

	entries, err := fs.ReadDir(migrationsFS, dir)
	if err != nil {
		return fmt.Errorf("%w: read %s: %v", ErrApply, dir, err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	builder := sqlbuilder.New(driver)

	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		version := strings.TrimSuffix(e.Name(), ".sql")
		if applied[version] {
			continue
		}

		body, err := fs.ReadFile(migrationsFS, dir+"/"+e.Name())
		if err != nil {
			return fmt.Errorf("%w: read %s: %v", ErrApply, e.Name(), err)
		}

		if err := applyOne(ctx, db, builder, version, string(body)); err != nil {
			return err
		}

		if logger != nil {
			logger.Info("Migration applied: version=%s, driver=%s", version, driver)
		}
	}

	return nil
}

func dirFor(driver string) (string, error) {
	switch driver {
	case sqlbuilder.DriverPostgres:
		return "postgres", nil
	case sqlbuilder.DriverSQLite:
		return "sqlite", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}
}

func appliedVersions(ctx context.Context, db *sql.DB) (map[string]bool, error) {
	rows, err := db.QueryContext(ctx, `SELECT version FROM `+versionsTable)
	if err != nil {
		return nil, fmt.Errorf("%w: list versions: %v", ErrApply, err)
	}
	defer rows.Close()

	applied := make(map[string]bool)
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("%w: scan version: %v", ErrApply, err)
		}
		applied[v] = true
	}
	return applied, rows.Err()
}

func applyOne(ctx context.Context, db *sql.DB, builder squirrel.StatementBuilderType, version, body string) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %s - begin: %v", ErrApply, version, err)
	}

	for _, stmt := range splitStatements(body) {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("%w: %s - exec: %v", ErrApply, version, err)
		}
	}

	query, args, err := builder.Insert(versionsTable).
		Columns("version", "applied_at").
		Values(version, types.NewTimestamp(time.Now())).
		ToSql()
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("%w: %s - build insert: %v", ErrApply, version, err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("%w: %s - record version: %v", ErrApply, version, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %s - commit: %v", ErrApply, version, err)
	}
	return nil
}

// splitStatements делит файл на отдельные выражения по ";"
// Миграции не содержат ";" внутри строковых литералов
func splitStatements(body string) []string {
	parts := strings.Split(body, ";")
	stmts := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			stmts = append(stmts, s)
		}
	}
	return stmts
}
