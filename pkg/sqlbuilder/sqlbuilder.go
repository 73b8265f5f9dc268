package sqlbuilder

import (
	"github.com/Masterminds/squirrel"
)

// Поддерживаемые драйверы БД
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// New возвращает построитель запросов с плейсхолдерами под драйвер:
// $1, $2 для PostgreSQL и ? для SQLite
func New(driver string) squirrel.StatementBuilderType {
	if driver == DriverSQLite {
		return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
	}
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// SupportsRowLocks возвращает true, если драйвер понимает SELECT ... FOR UPDATE
func SupportsRowLocks(driver string) bool {
	return driver == DriverPostgres
}
