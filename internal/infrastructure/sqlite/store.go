// Package sqlite implementa store.Store sobre SQLite embebido (database/sql + go-sqlite3 vía sqlx).
// Una sola conexión: serializa escrituras y mantiene viva la base ":memory:" de los tests.
package sqlite

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"

	"github.com/jhoicas/Planta-api/internal/domain"
	"github.com/jhoicas/Planta-api/internal/infrastructure/store"
)

var _ store.Store = (*Store)(nil)

// Store almacén SQLite.
type Store struct {
	db *sqlx.DB
}

// Open abre (o crea) la base en path; ":memory:" para una base en memoria.
func Open(path string) (*Store, error) {
	db, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)

	// SQLite trae las claves foráneas desactivadas por compatibilidad
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("sqlite %q: %w", p, err)
		}
	}
	return &Store{db: db}, nil
}

// New envuelve una conexión existente (tests con sqlmock o bases ya configuradas).
func New(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// DB conexión subyacente (migraciones).
func (s *Store) DB() *sqlx.DB {
	return s.db
}

// Query ejecuta una lectura y devuelve cada fila como mapa columna -> valor.
func (s *Store) Query(ctx context.Context, query string, args ...any) ([]store.Row, error) {
	rows, err := s.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, storageError("query", err)
	}
	defer rows.Close()

	var out []store.Row
	for rows.Next() {
		m := make(map[string]any)
		if err := rows.MapScan(m); err != nil {
			return nil, storageError("scan", err)
		}
		out = append(out, store.Row(m))
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("rows", err)
	}
	return out, nil
}

// Exec ejecuta una escritura suelta.
func (s *Store) Exec(ctx context.Context, query string, args ...any) error {
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return storageError("exec", err)
	}
	return nil
}

// Transaction aplica stmts en orden dentro de una transacción; cualquier fallo hace Rollback de todas.
func (s *Store) Transaction(ctx context.Context, stmts []store.Statement) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return storageError("begin transaction", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, st := range stmts {
		if _, err := tx.ExecContext(ctx, st.SQL, st.Args...); err != nil {
			return storageError(fmt.Sprintf("transaction statement %d", i), err)
		}
	}
	if err := tx.Commit(); err != nil {
		return storageError("commit transaction", err)
	}
	return nil
}

// NewID identificador nuevo.
func (s *Store) NewID() string {
	return store.NewID()
}

// Close cierra la conexión.
func (s *Store) Close() error {
	return s.db.Close()
}

func storageError(op string, err error) error {
	return &domain.StorageError{Op: op, Err: err, Duplicate: isUniqueViolation(err)}
}

// isUniqueViolation verifica si un error es una violación de constraint UNIQUE/PRIMARY KEY.
func isUniqueViolation(err error) bool {
	var sqErr sqlite3.Error
	if errors.As(err, &sqErr) {
		return sqErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}
