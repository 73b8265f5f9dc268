package minister

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

const table = "ministers"

var columns = []string{"id", "name", "email", "user_id", "created_at"}

// Repository репозиторий состава служителей
type Repository struct {
	db      DBExecutor
	builder squirrel.StatementBuilderType
}

// NewRepository создает новый экземпляр репозитория служителей
func NewRepository(db DBExecutor, driver string) *Repository {
	return &Repository{
		db:      db,
		builder: sqlbuilder.New(driver),
	}
}

// Create добавляет служителя
func (r *Repository) Create(ctx context.Context, m *domain.Minister) (*domain.Minister, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}

	query, args, err := r.builder.Insert(table).
		Columns(columns...).
		Values(m.ID, m.Name, types.NewNullString(m.Email), types.NewNullString(m.UserID), types.NewTimestamp(m.CreatedAt)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, ErrDuplicateUserID
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return m, nil
}

// GetByID получает служителя по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Minister, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrMinisterNotFound
	}
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetByUserID получает служителя, привязанного к пользователю
func (r *Repository) GetByUserID(ctx context.Context, userID string) (*domain.Minister, error) {
	return r.getOne(ctx, "GetByUserID", squirrel.Eq{"user_id": userID})
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Sqlizer) (*domain.Minister, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.builder.Select(columns...).
		From(table).
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	m, err := scanMinister(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMinisterNotFound
		}
		return nil, fmt.Errorf("%w: %s - scan: %v", ErrScanRow, op, err)
	}

	return m, nil
}

// List возвращает всех служителей по алфавиту
func (r *Repository) List(ctx context.Context) ([]*domain.Minister, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.builder.Select(columns...).
		From(table).
		OrderBy("name", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.Minister, 0)
	for rows.Next() {
		m, err := scanMinister(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan: %v", ErrScanRow, err)
		}
		result = append(result, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows iteration: %v", ErrScanRow, err)
	}

	return result, nil
}

// Delete удаляет служителя
// Его слоты освобождаются (FOREIGN KEY ... ON DELETE SET NULL)
func (r *Repository) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrMinisterNotFound
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
		return ErrMinisterNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanMinister(row rowScanner) (*domain.Minister, error) {
	var (
		m         domain.Minister
		email     sql.NullString
		userID    sql.NullString
		createdAt types.Timestamp
	)

	if err := row.Scan(&m.ID, &m.Name, &email, &userID, &createdAt); err != nil {
		return nil, err
	}

	m.Email = types.StringPtr(email)
	m.UserID = types.StringPtr(userID)
	m.CreatedAt = createdAt.Time

	return &m, nil
}
