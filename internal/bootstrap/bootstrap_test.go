package bootstrap_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Planta-api/internal/bootstrap"
	"github.com/jhoicas/Planta-api/internal/infrastructure/migrations"
	"github.com/jhoicas/Planta-api/pkg/config"
	"github.com/jhoicas/Planta-api/pkg/logger"
)

func TestOpen_SQLiteMigraYConstruyeCasosDeUso(t *testing.T) {
	cfg := &config.Config{
		App: config.AppConfig{Name: "planta-test"},
		DB:  config.DBConfig{Driver: config.DriverSQLite, SQLitePath: ":memory:"},
	}
	app, err := bootstrap.Open(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	assert.Equal(t, migrations.DialectSQLite, app.Dialect)
	require.NoError(t, app.Migrate())
	require.NoError(t, app.Migrate())

	st, err := app.Status()
	require.NoError(t, err)
	assert.False(t, st.Pending())
	assert.False(t, st.Dirty)

	assert.Empty(t, app.Directory.ListLocations(context.Background()))
	assert.Empty(t, app.Inventory.GetSummary(context.Background()))
}
