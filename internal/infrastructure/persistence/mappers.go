package persistence

import (
	"github.com/jhoicas/Planta-api/internal/domain/entity"
	"github.com/jhoicas/Planta-api/internal/infrastructure/store"
)

// Mapeo explícito fila <-> entidad. Las columnas de cada SELECT deben coincidir con los alias usados aquí.

func toLocation(r store.Row) *entity.Location {
	return &entity.Location{
		ID:        r.String("id"),
		Code:      r.String("code"),
		Name:      r.String("name"),
		Address:   r.StringPtr("address"),
		State:     entity.ActivityFromBool(r.Bool("is_active")),
		CreatedAt: r.Time("created_at"),
		UpdatedAt: r.Time("updated_at"),
	}
}

func locationArgs(l *entity.Location) []any {
	return []any{
		l.ID, l.Code, l.Name, l.Address, l.State.IsActive(),
		store.UTC(l.CreatedAt), store.UTC(l.UpdatedAt),
	}
}

func toDivision(r store.Row) *entity.Division {
	return &entity.Division{
		ID:           r.String("id"),
		LocationID:   r.String("location_id"),
		Code:         r.String("code"),
		Name:         r.String("name"),
		State:        entity.ActivityFromBool(r.Bool("is_active")),
		CreatedAt:    r.Time("created_at"),
		UpdatedAt:    r.Time("updated_at"),
		LocationName: r.String("location_name"),
		LocationCode: r.String("location_code"),
	}
}

func divisionArgs(d *entity.Division) []any {
	return []any{
		d.ID, d.LocationID, d.Code, d.Name, d.State.IsActive(),
		store.UTC(d.CreatedAt), store.UTC(d.UpdatedAt),
	}
}

func toLine(r store.Row) *entity.Line {
	hours := r.Decimal("hours_per_day")
	if r["hours_per_day"] == nil {
		hours = entity.DefaultHoursPerDay
	}
	return &entity.Line{
		ID:           r.String("id"),
		DivisionID:   r.String("division_id"),
		Code:         r.String("code"),
		Name:         r.String("name"),
		Description:  r.StringPtr("description"),
		HoursPerDay:  hours,
		State:        entity.ActivityFromBool(r.Bool("is_active")),
		CreatedAt:    r.Time("created_at"),
		UpdatedAt:    r.Time("updated_at"),
		DivisionName: r.String("division_name"),
		DivisionCode: r.String("division_code"),
	}
}

func lineArgs(l *entity.Line) []any {
	return []any{
		l.ID, l.DivisionID, l.Code, l.Name, l.Description, l.HoursPerDay, l.State.IsActive(),
		store.UTC(l.CreatedAt), store.UTC(l.UpdatedAt),
	}
}

func toDowntime(r store.Row) *entity.LineDowntime {
	return &entity.LineDowntime{
		ID:                       r.String("id"),
		LineID:                   r.String("line_id"),
		Reason:                   r.String("reason"),
		Category:                 r.String("category"),
		StartDateTime:            r.Time("start_date_time"),
		EndDateTime:              r.Time("end_date_time"),
		Duration:                 r.Decimal("duration"),
		DurationUnit:             entity.DurationUnit(r.String("duration_unit")),
		Recurrence:               entity.Recurrence(r.String("recurrence")),
		RecurrenceEndDate:        r.TimePtr("recurrence_end_date"),
		ImpactType:               entity.ImpactType(r.String("impact_type")),
		CapacityReductionPercent: r.DecimalPtr("capacity_reduction_percent"),
		Notes:                    r.StringPtr("notes"),
		CreatedBy:                r.String("created_by"),
		ApprovedBy:               r.StringPtr("approved_by"),
		Status:                   entity.DowntimeStatus(r.String("status")),
		CreatedAt:                r.Time("created_at"),
		UpdatedAt:                r.Time("updated_at"),
	}
}

func toInventory(r store.Row) *entity.Inventory {
	return &entity.Inventory{
		ID:              r.String("id"),
		PartID:          r.String("part_id"),
		DieID:           r.StringPtr("die_id"),
		RawMaterialCode: r.StringPtr("raw_material_code"),
		Stage:           entity.Stage(r.String("stage")),
		Status:          entity.InventoryStatus(r.String("status")),
		Quantity:        r.Int64("quantity"),
		OpeningQuantity: r.Int64("opening_quantity"),
		LocationID:      r.String("location_id"),
		DivisionID:      r.StringPtr("division_id"),
		LineID:          r.StringPtr("line_id"),
		LotNumber:       r.StringPtr("lot_number"),
		BatchNumber:     r.StringPtr("batch_number"),
		ExpiryDate:      r.TimePtr("expiry_date"),
		ValuationRate:   r.DecimalPtr("valuation_rate"),
		CreatedAt:       r.Time("created_at"),
		UpdatedAt:       r.Time("updated_at"),
		LocationName:    r.String("location_name"),
		LocationCode:    r.String("location_code"),
	}
}

func toTransaction(r store.Row) *entity.InventoryTransaction {
	return &entity.InventoryTransaction{
		ID:              r.String("id"),
		InventoryID:     r.String("inventory_id"),
		TransactionType: r.String("transaction_type"),
		Quantity:        r.Int64("quantity"),
		FromStatus:      entity.InventoryStatus(r.String("from_status")),
		ToStatus:        entity.InventoryStatus(r.String("to_status")),
		ReferenceType:   r.String("reference_type"),
		Notes:           r.StringPtr("notes"),
		CreatedBy:       r.String("created_by"),
		CreatedAt:       r.Time("created_at"),
	}
}
