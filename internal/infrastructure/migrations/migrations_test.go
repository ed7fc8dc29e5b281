package migrations_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Planta-api/internal/infrastructure/migrations"
)

func openMemory(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrateUp_SQLite_AplicaTodas(t *testing.T) {
	db := openMemory(t)

	require.NoError(t, migrations.MigrateUp(db, migrations.DialectSQLite))

	st, err := migrations.CurrentStatus(db, migrations.DialectSQLite)
	require.NoError(t, err)
	assert.False(t, st.Dirty)
	assert.False(t, st.Pending())
	assert.Equal(t, uint(3), st.Version)

	for _, table := range []string{"locations", "divisions", "lines", "line_downtimes", "inventory", "inventory_transactions"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, "tabla %s", table)
	}
}

func TestMigrateUp_Idempotente(t *testing.T) {
	db := openMemory(t)
	require.NoError(t, migrations.MigrateUp(db, migrations.DialectSQLite))
	require.NoError(t, migrations.MigrateUp(db, migrations.DialectSQLite))
}

func TestCurrentStatus_SinMigrar(t *testing.T) {
	db := openMemory(t)

	st, err := migrations.CurrentStatus(db, migrations.DialectSQLite)
	require.NoError(t, err)
	assert.Equal(t, uint(0), st.Version)
	assert.True(t, st.Pending())
}

func TestMigrateUp_DialectoDesconocido(t *testing.T) {
	db := openMemory(t)
	assert.Error(t, migrations.MigrateUp(db, "oracle"))
}
