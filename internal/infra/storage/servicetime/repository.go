package servicetime

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-MinisterSchedule/internal/domain"
	"github.com/m04kA/SMC-MinisterSchedule/pkg/dberrors"
	"github.com/m04kA/SMC-MinisterSchedule/pkg/dbmetrics"
	"github.com/m04kA/SMC-MinisterSchedule/pkg/sqlbuilder"
	"github.com/m04kA/SMC-MinisterSchedule/pkg/types"
)

const table = "masses"

var columns = []string{"id", "date", "time", "name", "is_recurring", "positions", "created_at"}

// Repository репозиторий определений служб (таблица masses)
type Repository struct {
	db      DBExecutor
	builder squirrel.StatementBuilderType
}

// NewRepository создает новый экземпляр репозитория служб
func NewRepository(db DBExecutor, driver string) *Repository {
	return &Repository{
		db:      db,
		builder: sqlbuilder.New(driver),
	}
}

// Create сохраняет определение службы
// ID и CreatedAt заполняются, если не заданы
// Возвращает ErrServiceTimeExists для повторной разовой службы с той же датой, временем и названием
func (r *Repository) Create(ctx context.Context, st *domain.ServiceTime) (*domain.ServiceTime, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if st.ID == "" {
		st.ID = uuid.NewString()
	}
	if st.CreatedAt.IsZero() {
		st.CreatedAt = time.Now().UTC()
	}
	st.Date = domain.NormalizeDate(st.Date)

	query, args, err := r.builder.Insert(table).
		Columns(columns...).
		Values(
			st.ID,
			types.NewDate(st.Date),
			st.Time,
			st.Name,
			st.IsRecurring,
			st.Positions,
			types.NewTimestamp(st.CreatedAt),
		).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, ErrServiceTimeExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return st, nil
}

// GetByID получает определение службы по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.ServiceTime, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrServiceTimeNotFound
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.builder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	st, err := scanServiceTime(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrServiceTimeNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - scan: %v", ErrScanRow, err)
	}

	return st, nil
}

// List возвращает все определения служб, упорядоченные по дате, времени и названию
func (r *Repository) List(ctx context.Context) ([]*domain.ServiceTime, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.builder.Select(columns...).
		From(table).
		OrderBy("date", "time", "name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.ServiceTime, 0)
	for rows.Next() {
		st, err := scanServiceTime(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan: %v", ErrScanRow, err)
		}
		result = append(result, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows iteration: %v", ErrScanRow, err)
	}

	return result, nil
}

// Delete удаляет определение службы
// Слоты службы удаляются каскадно (FOREIGN KEY ... ON DELETE CASCADE)
func (r *Repository) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrServiceTimeNotFound
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.builder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrServiceTimeNotFound
	}

	return nil
}

// DeleteAll удаляет все определения служб (вместе со слотами)
func (r *Repository) DeleteAll(ctx context.Context) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.builder.Delete(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteAll - build delete query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteAll - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteAll - rows affected: %v", ErrExecQuery, err)
	}

	return affected, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanServiceTime(row rowScanner) (*domain.ServiceTime, error) {
	var (
		st        domain.ServiceTime
		date      types.Date
		createdAt types.Timestamp
	)

	if err := row.Scan(
		&st.ID,
		&date,
		&st.Time,
		&st.Name,
		&st.IsRecurring,
		&st.Positions,
		&createdAt,
	); err != nil {
		return nil, err
	}

	st.Date = date.Time
	st.CreatedAt = createdAt.Time

	return &st, nil
}
