package persistence

import (
	"context"
	"fmt"

	"github.com/jhoicas/Planta-api/internal/domain/entity"
	"github.com/jhoicas/Planta-api/internal/domain/repository"
	"github.com/jhoicas/Planta-api/internal/infrastructure/store"
)

var _ repository.InventoryTransactionRepository = (*InventoryTransactionRepo)(nil)

const transactionColumns = `id, inventory_id, transaction_type, quantity, from_status, to_status,
	reference_type, notes, created_by, created_at`

// InventoryTransactionRepo libro de movimientos (solo INSERT; la tabla rechaza UPDATE).
type InventoryTransactionRepo struct {
	q store.Querier
}

// NewInventoryTransactionRepository construye el adaptador.
func NewInventoryTransactionRepository(q store.Querier) *InventoryTransactionRepo {
	return &InventoryTransactionRepo{q: q}
}

// Append registra un movimiento.
func (r *InventoryTransactionRepo) Append(ctx context.Context, t *entity.InventoryTransaction) error {
	if t.ID == "" {
		t.ID = r.q.NewID()
	}
	query := `INSERT INTO inventory_transactions (` + transactionColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	err := r.q.Exec(ctx, query,
		t.ID, t.InventoryID, t.TransactionType, t.Quantity, string(t.FromStatus), string(t.ToStatus),
		t.ReferenceType, t.Notes, t.CreatedBy, store.UTC(t.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert inventory transaction: %w", err)
	}
	return nil
}

// ListRecent últimos movimientos, más reciente primero.
func (r *InventoryTransactionRepo) ListRecent(ctx context.Context, inventoryID string, limit int) ([]*entity.InventoryTransaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM inventory_transactions`
	var args []any
	if inventoryID != "" {
		query += ` WHERE inventory_id = ?`
		args = append(args, inventoryID)
	}
	query += ` ORDER BY created_at DESC, id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inventory transactions: %w", err)
	}
	return toTransactions(rows), nil
}

// ListByInventory historial completo de una existencia en orden cronológico.
func (r *InventoryTransactionRepo) ListByInventory(ctx context.Context, inventoryID string) ([]*entity.InventoryTransaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM inventory_transactions
		WHERE inventory_id = ? ORDER BY created_at ASC, id ASC`
	rows, err := r.q.Query(ctx, query, inventoryID)
	if err != nil {
		return nil, fmt.Errorf("list inventory history: %w", err)
	}
	return toTransactions(rows), nil
}

func toTransactions(rows []store.Row) []*entity.InventoryTransaction {
	list := make([]*entity.InventoryTransaction, 0, len(rows))
	for _, row := range rows {
		list = append(list, toTransaction(row))
	}
	return list
}
