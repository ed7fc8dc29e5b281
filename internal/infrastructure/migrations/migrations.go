// Package migrations aplica el esquema versionado (golang-migrate, archivos embebidos por dialecto).
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed files/sqlite/*.sql files/postgres/*.sql
var migrationFiles embed.FS

// Dialectos soportados.
const (
	DialectSQLite   = "sqlite"
	DialectPostgres = "postgres"
)

// Status versión aplicada y si quedó a medias.
type Status struct {
	Version uint
	Dirty   bool
	Latest  uint
}

// Pending indica si faltan migraciones por aplicar.
func (s Status) Pending() bool {
	return s.Version < s.Latest
}

// MigrateUp aplica todas las migraciones pendientes. Sin cambios no es error.
// No cierra db: la conexión pertenece al llamador.
func MigrateUp(db *sql.DB, dialect string) error {
	m, err := newMigrate(db, dialect)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return nil
		}
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

// CurrentStatus devuelve la versión aplicada frente a la última embebida.
func CurrentStatus(db *sql.DB, dialect string) (Status, error) {
	m, err := newMigrate(db, dialect)
	if err != nil {
		return Status{}, err
	}
	latest, err := latestVersion(dialect)
	if err != nil {
		return Status{}, err
	}
	version, dirty, err := m.Version()
	if err != nil {
		if errors.Is(err, migrate.ErrNilVersion) {
			return Status{Latest: latest}, nil
		}
		return Status{}, fmt.Errorf("get database version: %w", err)
	}
	return Status{Version: version, Dirty: dirty, Latest: latest}, nil
}

func newMigrate(db *sql.DB, dialect string) (*migrate.Migrate, error) {
	dir, err := dirFor(dialect)
	if err != nil {
		return nil, err
	}
	sourceDriver, err := iofs.New(migrationFiles, dir)
	if err != nil {
		return nil, fmt.Errorf("create source driver: %w", err)
	}

	var dbDriver database.Driver
	switch dialect {
	case DialectSQLite:
		dbDriver, err = sqlite3.WithInstance(db, &sqlite3.Config{})
	case DialectPostgres:
		dbDriver, err = migratepgx.WithInstance(db, &migratepgx.Config{})
	}
	if err != nil {
		sourceDriver.Close()
		return nil, fmt.Errorf("create database driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, dialect, dbDriver)
	if err != nil {
		sourceDriver.Close()
		return nil, fmt.Errorf("create migrate instance: %w", err)
	}
	return m, nil
}

func dirFor(dialect string) (string, error) {
	switch dialect {
	case DialectSQLite:
		return "files/sqlite", nil
	case DialectPostgres:
		return "files/postgres", nil
	}
	return "", fmt.Errorf("dialecto no soportado: %q", dialect)
}

func latestVersion(dialect string) (uint, error) {
	dir, err := dirFor(dialect)
	if err != nil {
		return 0, err
	}
	src, err := iofs.New(migrationFiles, dir)
	if err != nil {
		return 0, err
	}
	defer src.Close()

	version, err := src.First()
	if err != nil {
		return 0, err
	}
	for {
		next, err := src.Next(version)
		if err != nil {
			break
		}
		version = next
	}
	return version, nil
}
