package persistence

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Planta-api/internal/domain/entity"
	"github.com/jhoicas/Planta-api/internal/domain/repository"
	"github.com/jhoicas/Planta-api/internal/infrastructure/store"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

const inventoryColumns = `id, part_id, die_id, raw_material_code, stage, status, quantity, opening_quantity,
	location_id, division_id, line_id, lot_number, batch_number, expiry_date, valuation_rate, created_at, updated_at`

const inventorySelect = `
	SELECT i.id, i.part_id, i.die_id, i.raw_material_code, i.stage, i.status, i.quantity, i.opening_quantity,
		i.location_id, i.division_id, i.line_id, i.lot_number, i.batch_number, i.expiry_date, i.valuation_rate,
		i.created_at, i.updated_at,
		l.name AS location_name, l.code AS location_code
	FROM inventory i
	LEFT JOIN locations l ON l.id = i.location_id`

// InventoryRepo implementación de InventoryRepository.
type InventoryRepo struct {
	q store.Querier
}

// NewInventoryRepository construye el adaptador.
func NewInventoryRepository(q store.Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Create persiste la existencia con su cantidad inicial.
func (r *InventoryRepo) Create(ctx context.Context, inv *entity.Inventory) error {
	if inv.ID == "" {
		inv.ID = r.q.NewID()
	}
	query := `INSERT INTO inventory (` + inventoryColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	err := r.q.Exec(ctx, query,
		inv.ID, inv.PartID, inv.DieID, inv.RawMaterialCode, string(inv.Stage), string(inv.Status),
		inv.Quantity, inv.OpeningQuantity, inv.LocationID, inv.DivisionID, inv.LineID,
		inv.LotNumber, inv.BatchNumber, store.UTCPtr(inv.ExpiryDate), inv.ValuationRate,
		store.UTC(inv.CreatedAt), store.UTC(inv.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert inventory: %w", err)
	}
	return nil
}

// GetByID obtiene la existencia con el nombre de su planta.
func (r *InventoryRepo) GetByID(ctx context.Context, id string) (*entity.Inventory, error) {
	rows, err := r.q.Query(ctx, inventorySelect+` WHERE i.id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return toInventory(rows[0]), nil
}

// Update reescribe los campos descriptivos. Cantidad y estado solo cambian vía AdjustQuantity/SetStatus.
func (r *InventoryRepo) Update(ctx context.Context, inv *entity.Inventory) error {
	query := `
		UPDATE inventory SET
			part_id = ?, die_id = ?, raw_material_code = ?, stage = ?, location_id = ?, division_id = ?,
			line_id = ?, lot_number = ?, batch_number = ?, expiry_date = ?, valuation_rate = ?, updated_at = ?
		WHERE id = ?`
	err := r.q.Exec(ctx, query,
		inv.PartID, inv.DieID, inv.RawMaterialCode, string(inv.Stage), inv.LocationID, inv.DivisionID,
		inv.LineID, inv.LotNumber, inv.BatchNumber, store.UTCPtr(inv.ExpiryDate), inv.ValuationRate,
		store.UTC(inv.UpdatedAt), inv.ID,
	)
	if err != nil {
		return fmt.Errorf("update inventory: %w", err)
	}
	return nil
}

// List existencias filtradas, ordenadas por etapa, estado y pieza.
func (r *InventoryRepo) List(ctx context.Context, f repository.InventoryFilter) ([]*entity.Inventory, error) {
	var (
		conds []string
		args  []any
	)
	if f.Stage != "" {
		conds = append(conds, "i.stage = ?")
		args = append(args, string(f.Stage))
	}
	if f.Status != "" {
		conds = append(conds, "i.status = ?")
		args = append(args, string(f.Status))
	}
	if f.LocationID != "" {
		conds = append(conds, "i.location_id = ?")
		args = append(args, f.LocationID)
	}
	if f.PartID != "" {
		conds = append(conds, "i.part_id = ?")
		args = append(args, f.PartID)
	}
	query := inventorySelect
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY i.stage ASC, i.status ASC, i.part_id ASC`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	list := make([]*entity.Inventory, 0, len(rows))
	for _, row := range rows {
		list = append(list, toInventory(row))
	}
	return list, nil
}

// AdjustQuantity suma delta a la cantidad actual en la propia sentencia (sin leer-modificar-escribir).
func (r *InventoryRepo) AdjustQuantity(ctx context.Context, id string, delta int64, at time.Time) error {
	query := `UPDATE inventory SET quantity = quantity + ?, updated_at = ? WHERE id = ?`
	if err := r.q.Exec(ctx, query, delta, store.UTC(at), id); err != nil {
		return fmt.Errorf("adjust inventory quantity: %w", err)
	}
	return nil
}

// SetStatus cambia el estado de disponibilidad.
func (r *InventoryRepo) SetStatus(ctx context.Context, id string, status entity.InventoryStatus, at time.Time) error {
	query := `UPDATE inventory SET status = ?, updated_at = ? WHERE id = ?`
	if err := r.q.Exec(ctx, query, string(status), store.UTC(at), id); err != nil {
		return fmt.Errorf("set inventory status: %w", err)
	}
	return nil
}
