package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Planta-api/internal/domain"
	"github.com/jhoicas/Planta-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/Planta-api/internal/infrastructure/store"
)

func newMock(t *testing.T) (*sqlite.Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlite.New(sqlx.NewDb(db, "sqlite3")), mock
}

func TestTransaction_RollbackAlFallarUnaSentencia(t *testing.T) {
	s, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE inventory").WithArgs(int64(-30), "inv-1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO inventory_transactions").WillReturnError(errors.New("disk I/O error"))
	mock.ExpectRollback()

	err := s.Transaction(context.Background(), []store.Statement{
		{SQL: "UPDATE inventory SET quantity = quantity + ? WHERE id = ?", Args: []any{int64(-30), "inv-1"}},
		{SQL: "INSERT INTO inventory_transactions (id) VALUES (?)", Args: []any{"t-1"}},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrStorage))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransaction_CommitCuandoTodoSale(t *testing.T) {
	s, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE inventory").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := s.Transaction(context.Background(), []store.Statement{
		{SQL: "UPDATE inventory SET status = ? WHERE id = ?", Args: []any{"reserved", "inv-1"}},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuery_DevuelveFilasComoMapa(t *testing.T) {
	s, mock := newMock(t)

	mock.ExpectQuery("SELECT id, name FROM locations").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow("loc-1", "Mundhawa"))

	rows, err := s.Query(context.Background(), "SELECT id, name FROM locations")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Mundhawa", rows[0].String("name"))
}

func TestOpen_MemoriaActivaClavesForaneas(t *testing.T) {
	s, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	defer s.Close()

	rows, err := s.Query(context.Background(), "PRAGMA foreign_keys")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(1), rows[0].Int64("foreign_keys"))
}
