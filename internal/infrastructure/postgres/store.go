package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"

	"github.com/jhoicas/Planta-api/internal/infrastructure/store"
)

var _ store.Store = (*Store)(nil)

// Store implementación de store.Store sobre pgxpool. Las sentencias llegan con "?" y se
// reescriben a $1..$n antes de enviarse.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore construye el adaptador con el pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

func rebind(query string) string {
	return sqlx.Rebind(sqlx.DOLLAR, query)
}

// Query ejecuta una lectura; cada fila se devuelve como mapa columna -> valor.
func (s *Store) Query(ctx context.Context, query string, args ...any) ([]store.Row, error) {
	rows, err := s.pool.Query(ctx, rebind(query), args...)
	if err != nil {
		return nil, storageError("query", err)
	}
	maps, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, storageError("collect rows", err)
	}
	out := make([]store.Row, 0, len(maps))
	for _, m := range maps {
		out = append(out, store.Row(m))
	}
	return out, nil
}

// Exec ejecuta una escritura suelta.
func (s *Store) Exec(ctx context.Context, query string, args ...any) error {
	if _, err := s.pool.Exec(ctx, rebind(query), args...); err != nil {
		return storageError("exec", err)
	}
	return nil
}

// Transaction inicia una transacción, ejecuta stmts en orden y hace Commit o Rollback.
func (s *Store) Transaction(ctx context.Context, stmts []store.Statement) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return storageError("begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for i, st := range stmts {
		if _, err := tx.Exec(ctx, rebind(st.SQL), st.Args...); err != nil {
			return storageError(fmt.Sprintf("transaction statement %d", i), err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return storageError("commit transaction", err)
	}
	return nil
}

// NewID identificador nuevo.
func (s *Store) NewID() string {
	return store.NewID()
}

// Close cierra el pool.
func (s *Store) Close() error {
	s.pool.Close()
	return nil
}
