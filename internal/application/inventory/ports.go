package inventory

import (
	"context"

	"github.com/jhoicas/Planta-api/internal/domain/repository"
)

// TxRunner ejecuta una función cuyas escrituras se confirman juntas o no se confirman,
// pasando repositorios atados a esa unidad atómica.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		invRepo repository.InventoryRepository,
		txnRepo repository.InventoryTransactionRepository,
	) error) error
}

// Locker exclusión mutua por clave (una existencia de inventario). unlock libera la clave.
type Locker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}
