// Package store define el contrato mínimo que los repositorios consumen del motor SQL:
// consulta, ejecución, transacción todo-o-nada y generación de identificadores.
//
// Las sentencias se escriben con marcadores "?"; cada motor los adapta a su dialecto.
package store

import (
	"context"

	"github.com/google/uuid"
)

// Statement sentencia con sus parámetros posicionales.
type Statement struct {
	SQL  string
	Args []any
}

// Querier lectura/escritura fuera de transacción (pool, conexión o lote).
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) ([]Row, error)
	Exec(ctx context.Context, sql string, args ...any) error
	NewID() string
}

// Store Querier + aplicación atómica de una secuencia de sentencias.
// Los errores son *domain.StorageError.
type Store interface {
	Querier
	Transaction(ctx context.Context, stmts []Statement) error
	Close() error
}

// NewID identificador globalmente único (UUID v7): en un mismo proceso crece con cada llamada,
// así que sirve de desempate estable en "ORDER BY created_at, id".
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
