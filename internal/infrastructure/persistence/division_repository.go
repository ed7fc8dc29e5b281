package persistence

import (
	"context"
	"fmt"

	"github.com/jhoicas/Planta-api/internal/domain/entity"
	"github.com/jhoicas/Planta-api/internal/domain/repository"
	"github.com/jhoicas/Planta-api/internal/infrastructure/store"
)

var _ repository.DivisionRepository = (*DivisionRepo)(nil)

const divisionSelect = `
	SELECT d.id, d.location_id, d.code, d.name, d.is_active, d.created_at, d.updated_at,
	       l.name AS location_name, l.code AS location_code
	FROM divisions d
	LEFT JOIN locations l ON l.id = d.location_id`

// DivisionRepo implementación de DivisionRepository.
type DivisionRepo struct {
	q store.Querier
}

// NewDivisionRepository construye el adaptador.
func NewDivisionRepository(q store.Querier) *DivisionRepo {
	return &DivisionRepo{q: q}
}

// Create persiste una división.
func (r *DivisionRepo) Create(ctx context.Context, d *entity.Division) error {
	if d.ID == "" {
		d.ID = r.q.NewID()
	}
	query := `
		INSERT INTO divisions (id, location_id, code, name, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	if err := r.q.Exec(ctx, query, divisionArgs(d)...); err != nil {
		return fmt.Errorf("insert division: %w", err)
	}
	return nil
}

// GetByID obtiene una división con el nombre y código de su planta.
func (r *DivisionRepo) GetByID(ctx context.Context, id string) (*entity.Division, error) {
	rows, err := r.q.Query(ctx, divisionSelect+` WHERE d.id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("get division: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return toDivision(rows[0]), nil
}

// Update reescribe los campos editables y el estado.
func (r *DivisionRepo) Update(ctx context.Context, d *entity.Division) error {
	query := `
		UPDATE divisions SET location_id = ?, code = ?, name = ?, is_active = ?, updated_at = ?
		WHERE id = ?`
	err := r.q.Exec(ctx, query, d.LocationID, d.Code, d.Name, d.State.IsActive(), store.UTC(d.UpdatedAt), d.ID)
	if err != nil {
		return fmt.Errorf("update division: %w", err)
	}
	return nil
}

// ListActive divisiones activas (opcionalmente de una planta) ordenadas por nombre.
// El filtro por planta no mira si la planta está activa.
func (r *DivisionRepo) ListActive(ctx context.Context, locationID string) ([]*entity.Division, error) {
	query := divisionSelect + ` WHERE d.is_active = ?`
	args := []any{true}
	if locationID != "" {
		query += ` AND d.location_id = ?`
		args = append(args, locationID)
	}
	query += ` ORDER BY d.name ASC`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list divisions: %w", err)
	}
	list := make([]*entity.Division, 0, len(rows))
	for _, row := range rows {
		list = append(list, toDivision(row))
	}
	return list, nil
}
