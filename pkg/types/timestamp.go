package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidTimestamp возвращается, когда значение из БД не удалось разобрать как время
	ErrInvalidTimestamp = errors.New("invalid timestamp format")
)

// Форматы, в которых драйверы отдают время текстом (SQLite хранит TIMESTAMP как TEXT)
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999 -0700 MST",
	"2006-01-02 15:04:05",
}

// Timestamp момент времени в UTC, читаемый одинаково из PostgreSQL и SQLite
type Timestamp struct {
	time.Time
}

// NewTimestamp приводит t к UTC
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC()}
}

// Scan реализует sql.Scanner
func (ts *Timestamp) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*ts = Timestamp{}
		return nil
	case time.Time:
		*ts = NewTimestamp(v)
		return nil
	case string:
		return ts.parse(v)
	case []byte:
		return ts.parse(string(v))
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidTimestamp, src)
	}
}

func (ts *Timestamp) parse(s string) error {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			*ts = NewTimestamp(t)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrInvalidTimestamp, s)
}

// Value реализует driver.Valuer
func (ts Timestamp) Value() (driver.Value, error) {
	return ts.Time.UTC().Format(time.RFC3339Nano), nil
}
