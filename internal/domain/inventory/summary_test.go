package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Planta-api/internal/domain/entity"
	"github.com/jhoicas/Planta-api/internal/domain/inventory"
)

func item(stage entity.Stage, status entity.InventoryStatus, qty int64, rate string) *entity.Inventory {
	inv := &entity.Inventory{Stage: stage, Status: status, Quantity: qty}
	if rate != "" {
		r := decimal.RequireFromString(rate)
		inv.ValuationRate = &r
	}
	return inv
}

func TestSummarize_AgrupaYOrdena(t *testing.T) {
	items := []*entity.Inventory{
		item(entity.StageRaw, entity.StatusReserved, 5, "1"),
		item(entity.StageFinished, entity.StatusAvailable, 2, "100"),
		item(entity.StageRaw, entity.StatusAvailable, 10, "1.5"),
		item(entity.StageRaw, entity.StatusAvailable, 4, ""),
	}
	got := inventory.Summarize(items)
	require.Len(t, got, 3)

	assert.Equal(t, entity.StageFinished, got[0].Stage)
	assert.Equal(t, entity.StageRaw, got[1].Stage)
	assert.Equal(t, entity.StatusAvailable, got[1].Status)
	assert.Equal(t, 2, got[1].ItemCount)
	assert.Equal(t, int64(14), got[1].TotalQuantity)
	assert.True(t, got[1].TotalValue.Equal(decimal.NewFromInt(15)))
	assert.Equal(t, entity.StatusReserved, got[2].Status)
}

func TestSummarize_Vacio(t *testing.T) {
	got := inventory.Summarize(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestDrift(t *testing.T) {
	inv := &entity.Inventory{Quantity: 70, OpeningQuantity: 100}
	txs := []*entity.InventoryTransaction{{Quantity: -30}, {Quantity: 0}}
	assert.Equal(t, int64(0), inventory.Drift(inv, txs))

	inv.Quantity = 75
	assert.Equal(t, int64(5), inventory.Drift(inv, txs))
}
