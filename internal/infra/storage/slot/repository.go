package slot

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

const table = "minister_slots"

// Имя служителя подтягивается LEFT JOIN при каждом чтении
var selectColumns = []string{
	"s.id",
	"s.mass_id",
	"s.date",
	"s.position",
	"s.minister_id",
	"m.name",
	"s.created_at",
	"s.updated_at",
}

// Repository репозиторий слотов служителей
type Repository struct {
	db       DBExecutor
	builder  squirrel.StatementBuilderType
	rowLocks bool
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor, driver string) *Repository {
	return &Repository{
		db:       db,
		builder:  sqlbuilder.New(driver),
		rowLocks: sqlbuilder.SupportsRowLocks(driver),
	}
}

func (r *Repository) selectSlots() squirrel.SelectBuilder {
	return r.builder.Select(selectColumns...).
		From(table + " s").
		LeftJoin("ministers m ON m.id = s.minister_id")
}

// lockSuffix добавляет FOR UPDATE внутри транзакции (только PostgreSQL;
// в SQLite запись и так сериализована)
func (r *Repository) lockSuffix(ctx context.Context, q squirrel.SelectBuilder) squirrel.SelectBuilder {
	if r.rowLocks && dbmetrics.IsInTransaction(ctx) {
		return q.Suffix("FOR UPDATE OF s")
	}
	return q
}

// Create создает слот без назначенного служителя
// Возвращает ErrSlotExists, если слот с той же (служба, дата, позиция) уже есть
func (r *Repository) Create(ctx context.Context, s *domain.MinisterSlot) (*domain.MinisterSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	s.UpdatedAt = s.CreatedAt
	s.Date = domain.NormalizeDate(s.Date)

	query, args, err := r.builder.Insert(table).
		Columns("id", "mass_id", "date", "position", "minister_id", "created_at", "updated_at").
		Values(
			s.ID,
			s.ServiceID,
			types.NewDate(s.Date),
			s.Position,
			types.NewNullString(s.MinisterID),
			types.NewTimestamp(s.CreatedAt),
			types.NewTimestamp(s.UpdatedAt),
		).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		switch {
		case dberrors.IsUniqueViolation(err):
			return nil, ErrSlotExists
		case dberrors.IsForeignKeyViolation(err):
			return nil, ErrReferenceNotFound
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return s, nil
}

// GetByID получает слот по ID
// Внутри транзакции строка блокируется (FOR UPDATE)
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.MinisterSlot, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrSlotNotFound
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.lockSuffix(ctx, r.selectSlots().Where(squirrel.Eq{"s.id": id})).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	s, err := scanSlot(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSlotNotFound
		}
		if dberrors.IsSerializationFailure(err) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("%w: GetByID - scan: %v", ErrScanRow, err)
	}

	return s, nil
}

// GetByKey получает слот по (служба, дата, позиция)
func (r *Repository) GetByKey(ctx context.Context, key domain.SlotKey) (*domain.MinisterSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.selectSlots().
		Where(squirrel.Eq{
			"s.mass_id":  key.ServiceID,
			"s.date":     types.NewDate(key.Date),
			"s.position": key.Position,
		}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByKey - build select query: %v", ErrBuildQuery, err)
	}

	s, err := scanSlot(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSlotNotFound
		}
		return nil, fmt.Errorf("%w: GetByKey - scan: %v", ErrScanRow, err)
	}

	return s, nil
}

// List возвращает все слоты
func (r *Repository) List(ctx context.Context) ([]*domain.MinisterSlot, error) {
	return r.list(ctx, "List", r.selectSlots())
}

// ListByDateRange возвращает слоты с датами в [from, to)
func (r *Repository) ListByDateRange(ctx context.Context, from, to time.Time) ([]*domain.MinisterSlot, error) {
	q := r.selectSlots().Where(squirrel.And{
		squirrel.GtOrEq{"s.date": types.NewDate(from)},
		squirrel.Lt{"s.date": types.NewDate(to)},
	})
	return r.list(ctx, "ListByDateRange", q)
}

// ListByOccurrence возвращает все слоты службы в указанный день
// Внутри транзакции строки блокируются (FOR UPDATE)
func (r *Repository) ListByOccurrence(ctx context.Context, serviceID string, date time.Time) ([]*domain.MinisterSlot, error) {
	if _, err := uuid.Parse(serviceID); err != nil {
		return []*domain.MinisterSlot{}, nil
	}

	q := r.selectSlots().Where(squirrel.Eq{
		"s.mass_id": serviceID,
		"s.date":    types.NewDate(date),
	})
	return r.list(ctx, "ListByOccurrence", r.lockSuffix(ctx, q))
}

func (r *Repository) list(ctx context.Context, op string, q squirrel.SelectBuilder) ([]*domain.MinisterSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := q.OrderBy("s.date", "s.mass_id", "s.position").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		if dberrors.IsSerializationFailure(err) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("%w: %s - execute select: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	result := make([]*domain.MinisterSlot, 0)
	for rows.Next() {
		s, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan: %v", ErrScanRow, op, err)
		}
		result = append(result, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows iteration: %v", ErrScanRow, op, err)
	}

	return result, nil
}

// UpdateAssignment назначает служителя на слот (ministerID == nil освобождает слот)
// Уникальный индекс (служба, дата, служитель) - окончательная проверка
// правила "один служитель - один слот службы в день"
func (r *Repository) UpdateAssignment(ctx context.Context, slotID string, ministerID *string) error {
	if _, err := uuid.Parse(slotID); err != nil {
		return ErrSlotNotFound
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.builder.Update(table).
		Set("minister_id", types.NewNullString(ministerID)).
		Set("updated_at", types.NewTimestamp(time.Now())).
		Where(squirrel.Eq{"id": slotID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateAssignment - build update query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		switch {
		case dberrors.IsUniqueViolation(err):
			return ErrMinisterAlreadyAssigned
		case dberrors.IsForeignKeyViolation(err):
			return ErrReferenceNotFound
		case dberrors.IsSerializationFailure(err):
			return ErrConflict
		}
		return fmt.Errorf("%w: UpdateAssignment - execute update: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateAssignment - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrSlotNotFound
	}

	return nil
}

// DeleteAll удаляет все слоты
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

func scanSlot(row rowScanner) (*domain.MinisterSlot, error) {
	var (
		s            domain.MinisterSlot
		date         types.Date
		ministerID   sql.NullString
		ministerName sql.NullString
		createdAt    types.Timestamp
		updatedAt    types.Timestamp
	)

	if err := row.Scan(
		&s.ID,
		&s.ServiceID,
		&date,
		&s.Position,
		&ministerID,
		&ministerName,
		&createdAt,
		&updatedAt,
	); err != nil {
		return nil, err
	}

	s.Date = date.Time
	s.MinisterID = types.StringPtr(ministerID)
	s.MinisterName = types.StringPtr(ministerName)
	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}
