package persistence

import (
	"context"
	"fmt"

	"github.com/jhoicas/Planta-api/internal/application/inventory"
	"github.com/jhoicas/Planta-api/internal/domain/repository"
	"github.com/jhoicas/Planta-api/internal/infrastructure/store"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks cuyas escrituras se aplican todas o ninguna.
// Los repos entregados a fn encolan sus escrituras en un store.Batch; las lecturas van directo al Store.
type TxRunner struct {
	store store.Store
}

// NewTxRunner construye el runner sobre el Store.
func NewTxRunner(s store.Store) *TxRunner {
	return &TxRunner{store: s}
}

// Run ejecuta fn con repos atados al lote y hace Commit solo si fn no devuelve error.
func (r *TxRunner) Run(ctx context.Context, fn func(
	invRepo repository.InventoryRepository,
	txnRepo repository.InventoryTransactionRepository,
) error) error {
	batch := store.NewBatch(r.store)

	if err := fn(NewInventoryRepository(batch), NewInventoryTransactionRepository(batch)); err != nil {
		return err
	}
	if err := batch.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
