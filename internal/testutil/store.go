// Package testutil arma un almacén SQLite en memoria con el esquema aplicado, para tests de repositorios y casos de uso.
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Planta-api/internal/domain/entity"
	"github.com/jhoicas/Planta-api/internal/infrastructure/migrations"
	"github.com/jhoicas/Planta-api/internal/infrastructure/sqlite"
)

// NewStore base ":memory:" migrada; se cierra al terminar el test.
func NewStore(t *testing.T) *sqlite.Store {
	t.Helper()
	s, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, migrations.MigrateUp(s.DB().DB, migrations.DialectSQLite))
	return s
}

// Hierarchy IDs de una jerarquía mínima planta -> división -> línea.
type Hierarchy struct {
	LocationID string
	DivisionID string
	LineID     string
}

// SeedHierarchy inserta la planta MUN (Mundhawa), la división FMD (Forging) y la línea L1.
func SeedHierarchy(t *testing.T, s *sqlite.Store) Hierarchy {
	t.Helper()
	ctx := context.Background()
	now := time.Now().UTC()
	h := Hierarchy{LocationID: s.NewID(), DivisionID: s.NewID(), LineID: s.NewID()}

	require.NoError(t, s.Exec(ctx,
		`INSERT INTO locations (id, code, name, is_active, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		h.LocationID, "MUN", "Mundhawa", true, now, now))
	require.NoError(t, s.Exec(ctx,
		`INSERT INTO divisions (id, location_id, code, name, is_active, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		h.DivisionID, h.LocationID, "FMD", "Forging", true, now, now))
	require.NoError(t, s.Exec(ctx,
		`INSERT INTO lines (id, division_id, code, name, hours_per_day, is_active, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		h.LineID, h.DivisionID, "L1", "Press Line 1", entity.DefaultHoursPerDay, true, now, now))
	return h
}
