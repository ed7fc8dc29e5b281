package entity

import "time"

// Tipos de movimiento del libro de inventario.
const (
	TransactionAdjustment   = "adjustment"
	TransactionStatusChange = "status_change"
)

// ReferenceManual origen de los movimientos registrados a mano desde la consola.
const ReferenceManual = "manual"

// InventoryTransaction movimiento inmutable del libro; solo se elimina en cascada con su Inventory.
type InventoryTransaction struct {
	ID              string
	InventoryID     string
	TransactionType string
	Quantity        int64 // delta aplicado (con signo)
	FromStatus      InventoryStatus
	ToStatus        InventoryStatus
	ReferenceType   string
	Notes           *string
	CreatedBy       string
	CreatedAt       time.Time
}
