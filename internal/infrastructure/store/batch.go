package store

import "context"

// Batch Querier que acumula las escrituras en lugar de ejecutarlas; las lecturas van al Store.
// Commit aplica todo lo acumulado con una sola llamada a Store.Transaction.
type Batch struct {
	store Store
	stmts []Statement
}

var _ Querier = (*Batch)(nil)

// NewBatch crea un lote vacío sobre s.
func NewBatch(s Store) *Batch {
	return &Batch{store: s}
}

// Query lee directamente del Store (no ve las escrituras pendientes del lote).
func (b *Batch) Query(ctx context.Context, sql string, args ...any) ([]Row, error) {
	return b.store.Query(ctx, sql, args...)
}

// Exec encola la sentencia.
func (b *Batch) Exec(_ context.Context, sql string, args ...any) error {
	b.stmts = append(b.stmts, Statement{SQL: sql, Args: args})
	return nil
}

// NewID delega en el Store.
func (b *Batch) NewID() string {
	return b.store.NewID()
}

// Statements sentencias encoladas, en orden.
func (b *Batch) Statements() []Statement {
	return b.stmts
}

// Commit aplica el lote de forma atómica. Un lote vacío no toca el Store.
func (b *Batch) Commit(ctx context.Context) error {
	if len(b.stmts) == 0 {
		return nil
	}
	return b.store.Transaction(ctx, b.stmts)
}
