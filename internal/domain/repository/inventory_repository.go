package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Planta-api/internal/domain/entity"
)

// InventoryFilter criterios de listado de existencias (todos opcionales).
type InventoryFilter struct {
	Stage      entity.Stage
	Status     entity.InventoryStatus
	LocationID string
	PartID     string
}

// InventoryRepository puerto de persistencia para Inventory.
// AdjustQuantity y SetStatus solo deben usarse dentro de TxRunner, junto con el movimiento del libro.
type InventoryRepository interface {
	Create(ctx context.Context, inv *entity.Inventory) error
	GetByID(ctx context.Context, id string) (*entity.Inventory, error)
	Update(ctx context.Context, inv *entity.Inventory) error
	List(ctx context.Context, filter InventoryFilter) ([]*entity.Inventory, error)
	AdjustQuantity(ctx context.Context, id string, delta int64, at time.Time) error
	SetStatus(ctx context.Context, id string, status entity.InventoryStatus, at time.Time) error
}

// InventoryTransactionRepository libro de movimientos: solo inserción y lectura.
type InventoryTransactionRepository interface {
	Append(ctx context.Context, tx *entity.InventoryTransaction) error
	// ListRecent más recientes primero; inventoryID vacío = todos.
	ListRecent(ctx context.Context, inventoryID string, limit int) ([]*entity.InventoryTransaction, error)
	// ListByInventory historial completo, más antiguo primero.
	ListByInventory(ctx context.Context, inventoryID string) ([]*entity.InventoryTransaction, error)
}
