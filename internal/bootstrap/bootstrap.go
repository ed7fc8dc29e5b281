// Package bootstrap arma el grafo de dependencias compartido por la API y la CLI:
// almacén según DB_DRIVER, migraciones, lock (memoria o Redis) y casos de uso.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/Planta-api/internal/application/directory"
	"github.com/jhoicas/Planta-api/internal/application/downtime"
	"github.com/jhoicas/Planta-api/internal/application/inventory"
	"github.com/jhoicas/Planta-api/internal/application/report"
	"github.com/jhoicas/Planta-api/internal/infrastructure/lock"
	"github.com/jhoicas/Planta-api/internal/infrastructure/migrations"
	"github.com/jhoicas/Planta-api/internal/infrastructure/persistence"
	"github.com/jhoicas/Planta-api/internal/infrastructure/postgres"
	infrareport "github.com/jhoicas/Planta-api/internal/infrastructure/report"
	"github.com/jhoicas/Planta-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/Planta-api/internal/infrastructure/store"
	"github.com/jhoicas/Planta-api/pkg/config"
	"github.com/jhoicas/Planta-api/pkg/logger"
)

// App dependencias construidas.
type App struct {
	Store   store.Store
	SQL     *sql.DB
	Dialect string

	Directory *directory.UseCase
	Downtime  *downtime.UseCase
	Inventory *inventory.UseCase
	Report    *report.UseCase

	closers []func() error
}

// Open abre el almacén configurado y construye los casos de uso. No migra: ver Migrate.
func Open(ctx context.Context, cfg *config.Config, log *logger.Logger) (*App, error) {
	a := &App{}

	switch cfg.DB.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		s := postgres.NewStore(pool)
		a.Store, a.SQL, a.Dialect = s, stdlib.OpenDBFromPool(pool), migrations.DialectPostgres
		a.closers = append(a.closers, a.SQL.Close, s.Close)
	default:
		s, err := sqlite.Open(cfg.DB.SQLitePath)
		if err != nil {
			return nil, err
		}
		a.Store, a.SQL, a.Dialect = s, s.DB().DB, migrations.DialectSQLite
		a.closers = append(a.closers, s.Close)
	}

	var locker inventory.Locker = lock.NewKeyed()
	if cfg.Redis.Enabled() {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			a.Close()
			return nil, fmt.Errorf("ping redis %s: %w", cfg.Redis.Addr, err)
		}
		locker = lock.NewRedis(rdb, cfg.Redis.LockTTL, log.Zerolog())
		a.closers = append(a.closers, rdb.Close)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("lock distribuido en redis")
	}

	locations := persistence.NewLocationRepository(a.Store)
	divisions := persistence.NewDivisionRepository(a.Store)
	lines := persistence.NewLineRepository(a.Store)

	a.Directory = directory.NewUseCase(locations, divisions, lines, log)
	a.Downtime = downtime.NewUseCase(persistence.NewDowntimeRepository(a.Store), lines, log)
	a.Inventory = inventory.NewUseCase(
		persistence.NewInventoryRepository(a.Store),
		persistence.NewInventoryTransactionRepository(a.Store),
		persistence.NewTxRunner(a.Store),
		locker,
		inventory.Directory{Locations: locations, Divisions: divisions, Lines: lines},
		inventory.Options{AllowNegativeStock: cfg.Ledger.AllowNegativeStock},
		log,
	)
	a.Report = report.NewUseCase(a.Inventory, a.Directory, a.Downtime, infrareport.NewRenderer(cfg.App.Name), log)
	return a, nil
}

// Migrate aplica las migraciones pendientes del dialecto activo.
func (a *App) Migrate() error {
	return migrations.MigrateUp(a.SQL, a.Dialect)
}

// Status versión de esquema aplicada.
func (a *App) Status() (migrations.Status, error) {
	return migrations.CurrentStatus(a.SQL, a.Dialect)
}

// Close libera conexiones en orden inverso de apertura.
func (a *App) Close() error {
	var first error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}
