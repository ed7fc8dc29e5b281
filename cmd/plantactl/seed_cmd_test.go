package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Planta-api/internal/bootstrap"
	"github.com/jhoicas/Planta-api/pkg/config"
	"github.com/jhoicas/Planta-api/pkg/logger"
)

func TestSeed_Idempotente(t *testing.T) {
	cfg := &config.Config{DB: config.DBConfig{Driver: config.DriverSQLite, SQLitePath: ":memory:"}}
	deps, err := bootstrap.Open(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = deps.Close() })
	require.NoError(t, deps.Migrate())

	ctx := context.Background()
	first, err := seed(ctx, deps.Directory)
	require.NoError(t, err)
	assert.Equal(t, seedResult{Created: 5}, first)

	second, err := seed(ctx, deps.Directory)
	require.NoError(t, err)
	assert.Equal(t, seedResult{Skipped: 5}, second)

	assert.Len(t, deps.Directory.ListLines(ctx, ""), 3)
}

func TestParseWhen(t *testing.T) {
	d, err := parseWhen("from", "2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, 1, d.Day())

	_, err = parseWhen("from", "ayer")
	assert.ErrorContains(t, err, "--from")
}
