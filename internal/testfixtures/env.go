package testfixtures

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MinisterSchedule/internal/domain"
	"github.com/m04kA/SMC-MinisterSchedule/internal/infra/storage/minister"
	"github.com/m04kA/SMC-MinisterSchedule/internal/infra/storage/servicetime"
	"github.com/m04kA/SMC-MinisterSchedule/internal/infra/storage/slot"
	"github.com/m04kA/SMC-MinisterSchedule/internal/infra/storage/storagetest"
	"github.com/m04kA/SMC-MinisterSchedule/pkg/dbmetrics"
	"github.com/m04kA/SMC-MinisterSchedule/pkg/logger"
	"github.com/m04kA/SMC-MinisterSchedule/pkg/sqlbuilder"
	"github.com/m04kA/SMC-MinisterSchedule/pkg/txmanager"
)

// Env хранилище в памяти (SQLite) с репозиториями и менеджером транзакций
type Env struct {
	DB           *dbmetrics.DB
	ServiceTimes *servicetime.Repository
	Slots        *slot.Repository
	Ministers    *minister.Repository
	TxManager    *txmanager.TransactionManager
	Publisher    *Publisher
	Logger       *logger.Logger
}

// NewEnv поднимает окружение для теста
func NewEnv(t *testing.T) *Env {
	t.Helper()

	db := storagetest.NewSQLite(t)

	return &Env{
		DB:           db,
		ServiceTimes: servicetime.NewRepository(db, sqlbuilder.DriverSQLite),
		Slots:        slot.NewRepository(db, sqlbuilder.DriverSQLite),
		Ministers:    minister.NewRepository(db, sqlbuilder.DriverSQLite),
		TxManager:    txmanager.NewTransactionManager(db, txmanager.WithSerializableLevel(sql.LevelDefault)),
		Publisher:    &Publisher{},
		Logger:       logger.NewNop(),
	}
}

// Day календарный день в UTC
func Day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AddServiceTime сохраняет определение службы
func (e *Env) AddServiceTime(t *testing.T, st *domain.ServiceTime) *domain.ServiceTime {
	t.Helper()
	if st.Positions == 0 {
		st.Positions = domain.DefaultPositions
	}
	created, err := e.ServiceTimes.Create(context.Background(), st)
	require.NoError(t, err)
	return created
}

// AddMinister сохраняет служителя
func (e *Env) AddMinister(t *testing.T, name string, userID *string) *domain.Minister {
	t.Helper()
	created, err := e.Ministers.Create(context.Background(), &domain.Minister{Name: name, UserID: userID})
	require.NoError(t, err)
	return created
}

// AddSlot сохраняет открытый слот
func (e *Env) AddSlot(t *testing.T, serviceID string, date time.Time, position int) *domain.MinisterSlot {
	t.Helper()
	created, err := e.Slots.Create(context.Background(), &domain.MinisterSlot{
		ServiceID: serviceID,
		Date:      date,
		Position:  position,
	})
	require.NoError(t, err)
	return created
}
