package dto

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CreateInventoryRequest alta de una existencia. Status vacío = available.
type CreateInventoryRequest struct {
	PartID          string           `json:"part_id" validate:"required,max=100"`
	DieID           *string          `json:"die_id"`
	RawMaterialCode *string          `json:"raw_material_code"`
	Stage           string           `json:"stage" validate:"required,oneof=raw forged heat_treated machined finished"`
	Status          string           `json:"status" validate:"omitempty,oneof=available reserved quarantine rejected"`
	Quantity        int64            `json:"quantity" validate:"min=0"`
	LocationID      string           `json:"location_id" validate:"required"`
	DivisionID      *string          `json:"division_id"`
	LineID          *string          `json:"line_id"`
	LotNumber       *string          `json:"lot_number"`
	BatchNumber     *string          `json:"batch_number"`
	ExpiryDate      *time.Time       `json:"expiry_date"`
	ValuationRate   *decimal.Decimal `json:"valuation_rate"`
}

// Normalize recorta espacios.
func (r *CreateInventoryRequest) Normalize() {
	r.PartID = strings.TrimSpace(r.PartID)
	r.LocationID = strings.TrimSpace(r.LocationID)
	trimPtr(r.DieID)
	trimPtr(r.RawMaterialCode)
	trimPtr(r.DivisionID)
	trimPtr(r.LineID)
	trimPtr(r.LotNumber)
	trimPtr(r.BatchNumber)
}

// UpdateInventoryRequest cambios descriptivos; cantidad y estado se mueven por el libro.
type UpdateInventoryRequest struct {
	PartID          *string          `json:"part_id" validate:"omitempty,min=1,max=100"`
	DieID           *string          `json:"die_id"`
	RawMaterialCode *string          `json:"raw_material_code"`
	Stage           *string          `json:"stage" validate:"omitempty,oneof=raw forged heat_treated machined finished"`
	LocationID      *string          `json:"location_id" validate:"omitempty,min=1"`
	DivisionID      *string          `json:"division_id"`
	LineID          *string          `json:"line_id"`
	LotNumber       *string          `json:"lot_number"`
	BatchNumber     *string          `json:"batch_number"`
	ExpiryDate      *time.Time       `json:"expiry_date"`
	ValuationRate   *decimal.Decimal `json:"valuation_rate"`
}

// Normalize recorta espacios.
func (r *UpdateInventoryRequest) Normalize() {
	trimPtr(r.PartID)
	trimPtr(r.DieID)
	trimPtr(r.RawMaterialCode)
	trimPtr(r.LocationID)
	trimPtr(r.DivisionID)
	trimPtr(r.LineID)
	trimPtr(r.LotNumber)
	trimPtr(r.BatchNumber)
}

// Empty indica que no se envió ningún campo.
func (r UpdateInventoryRequest) Empty() bool {
	return r.PartID == nil && r.DieID == nil && r.RawMaterialCode == nil && r.Stage == nil &&
		r.LocationID == nil && r.DivisionID == nil && r.LineID == nil && r.LotNumber == nil &&
		r.BatchNumber == nil && r.ExpiryDate == nil && r.ValuationRate == nil
}

// InventoryListFilter parámetros de GET /api/inventory.
type InventoryListFilter struct {
	Stage      string `query:"stage" validate:"omitempty,oneof=raw forged heat_treated machined finished"`
	Status     string `query:"status" validate:"omitempty,oneof=available reserved quarantine rejected"`
	LocationID string `query:"location_id"`
	PartID     string `query:"part_id"`
}

// AdjustStockRequest body de POST /api/inventory/:id/adjust. Delta con signo, distinto de cero.
type AdjustStockRequest struct {
	Delta  int64  `json:"delta" validate:"required"`
	Reason string `json:"reason" validate:"max=500"`
	UserID string `json:"-"`
}

// ChangeStatusRequest body de POST /api/inventory/:id/status.
type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=available reserved quarantine rejected"`
	Reason string `json:"reason" validate:"max=500"`
	UserID string `json:"-"`
}

// InventoryResponse salida de una existencia.
type InventoryResponse struct {
	ID              string           `json:"id"`
	PartID          string           `json:"part_id"`
	DieID           *string          `json:"die_id,omitempty"`
	RawMaterialCode *string          `json:"raw_material_code,omitempty"`
	Stage           string           `json:"stage"`
	Status          string           `json:"status"`
	Quantity        int64            `json:"quantity"`
	LocationID      string           `json:"location_id"`
	LocationName    string           `json:"location_name,omitempty"`
	LocationCode    string           `json:"location_code,omitempty"`
	DivisionID      *string          `json:"division_id,omitempty"`
	LineID          *string          `json:"line_id,omitempty"`
	LotNumber       *string          `json:"lot_number,omitempty"`
	BatchNumber     *string          `json:"batch_number,omitempty"`
	ExpiryDate      *time.Time       `json:"expiry_date,omitempty"`
	ValuationRate   *decimal.Decimal `json:"valuation_rate,omitempty"`
	Value           decimal.Decimal  `json:"value"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// InventoryTransactionResponse movimiento del libro.
type InventoryTransactionResponse struct {
	ID              string    `json:"id"`
	InventoryID     string    `json:"inventory_id"`
	TransactionType string    `json:"transaction_type"`
	Quantity        int64     `json:"quantity"`
	FromStatus      string    `json:"from_status"`
	ToStatus        string    `json:"to_status"`
	ReferenceType   string    `json:"reference_type"`
	Notes           *string   `json:"notes,omitempty"`
	CreatedBy       string    `json:"created_by"`
	CreatedAt       time.Time `json:"created_at"`
}

// StageSummaryResponse totales de un grupo (etapa, estado).
type StageSummaryResponse struct {
	Stage         string          `json:"stage"`
	Status        string          `json:"status"`
	ItemCount     int             `json:"item_count"`
	TotalQuantity int64           `json:"total_quantity"`
	TotalValue    decimal.Decimal `json:"total_value"`
}

// ReconcileResponse comparación de la cantidad actual contra apertura + movimientos.
type ReconcileResponse struct {
	InventoryID      string `json:"inventory_id"`
	Quantity         int64  `json:"quantity"`
	OpeningQuantity  int64  `json:"opening_quantity"`
	LedgerTotal      int64  `json:"ledger_total"`
	TransactionCount int    `json:"transaction_count"`
	Drift            int64  `json:"drift"`
	Balanced         bool   `json:"balanced"`
}
