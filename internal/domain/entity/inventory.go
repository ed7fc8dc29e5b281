package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stage etapa de manufactura en la que está el material.
type Stage string

const (
	StageRaw         Stage = "raw"
	StageForged      Stage = "forged"
	StageHeatTreated Stage = "heat_treated"
	StageMachined    Stage = "machined"
	StageFinished    Stage = "finished"
)

// Valid indica si la etapa es conocida.
func (s Stage) Valid() bool {
	switch s {
	case StageRaw, StageForged, StageHeatTreated, StageMachined, StageFinished:
		return true
	}
	return false
}

// InventoryStatus disponibilidad / calidad del material.
type InventoryStatus string

const (
	StatusAvailable  InventoryStatus = "available"
	StatusReserved   InventoryStatus = "reserved"
	StatusQuarantine InventoryStatus = "quarantine"
	StatusRejected   InventoryStatus = "rejected"
)

// Valid indica si el estado es conocido.
func (s InventoryStatus) Valid() bool {
	switch s {
	case StatusAvailable, StatusReserved, StatusQuarantine, StatusRejected:
		return true
	}
	return false
}

// Inventory existencia de una pieza en una etapa y ubicación.
// Quantity = OpeningQuantity + suma de los movimientos aplicados (ver InventoryTransaction).
type Inventory struct {
	ID              string
	PartID          string
	DieID           *string
	RawMaterialCode *string
	Stage           Stage
	Status          InventoryStatus
	Quantity        int64
	OpeningQuantity int64
	LocationID      string
	DivisionID      *string
	LineID          *string
	LotNumber       *string
	BatchNumber     *string
	ExpiryDate      *time.Time
	ValuationRate   *decimal.Decimal // moneda por unidad
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Solo lectura (join).
	LocationName string
	LocationCode string
}

// Value cantidad × tarifa de valoración; sin tarifa vale cero.
func (i *Inventory) Value() decimal.Decimal {
	if i.ValuationRate == nil {
		return decimal.Zero
	}
	return decimal.NewFromInt(i.Quantity).Mul(*i.ValuationRate)
}
