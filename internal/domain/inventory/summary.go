package inventory

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Planta-api/internal/domain/entity"
)

// StageStatusTotals agregado de existencias por par (etapa, estado).
type StageStatusTotals struct {
	Stage         entity.Stage
	Status        entity.InventoryStatus
	ItemCount     int
	TotalQuantity int64
	TotalValue    decimal.Decimal
}

// Summarize agrupa por (stage, status): conteo, suma de cantidades y suma de cantidad × tarifa
// (sin tarifa cuenta como cero). Orden ascendente por stage y luego status.
func Summarize(items []*entity.Inventory) []StageStatusTotals {
	type key struct {
		stage  entity.Stage
		status entity.InventoryStatus
	}
	groups := make(map[key]*StageStatusTotals)
	for _, it := range items {
		k := key{it.Stage, it.Status}
		g, ok := groups[k]
		if !ok {
			g = &StageStatusTotals{Stage: it.Stage, Status: it.Status, TotalValue: decimal.Zero}
			groups[k] = g
		}
		g.ItemCount++
		g.TotalQuantity += it.Quantity
		g.TotalValue = g.TotalValue.Add(it.Value())
	}

	out := make([]StageStatusTotals, 0, len(groups))
	for _, g := range groups {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Stage != out[j].Stage {
			return out[i].Stage < out[j].Stage
		}
		return out[i].Status < out[j].Status
	})
	return out
}

// Drift diferencia entre la cantidad registrada y la reconstruida desde el libro.
// Cero significa que el invariante cantidad = apertura + Σ deltas se cumple.
func Drift(inv *entity.Inventory, txs []*entity.InventoryTransaction) int64 {
	expected := inv.OpeningQuantity
	for _, t := range txs {
		expected += t.Quantity
	}
	return inv.Quantity - expected
}
