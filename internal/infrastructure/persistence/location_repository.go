package persistence

import (
	"context"
	"fmt"

	"github.com/jhoicas/Planta-api/internal/domain/entity"
	"github.com/jhoicas/Planta-api/internal/domain/repository"
	"github.com/jhoicas/Planta-api/internal/infrastructure/store"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)

const locationColumns = `id, code, name, address, is_active, created_at, updated_at`

// LocationRepo implementación del puerto LocationRepository sobre store.Querier.
type LocationRepo struct {
	q store.Querier
}

// NewLocationRepository construye el adaptador de persistencia para plantas.
func NewLocationRepository(q store.Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

// Create persiste una nueva planta; asigna ID si viene vacío.
func (r *LocationRepo) Create(ctx context.Context, l *entity.Location) error {
	if l.ID == "" {
		l.ID = r.q.NewID()
	}
	query := `INSERT INTO locations (` + locationColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	if err := r.q.Exec(ctx, query, locationArgs(l)...); err != nil {
		return fmt.Errorf("insert location: %w", err)
	}
	return nil
}

// GetByID obtiene una planta por ID (activa o no).
func (r *LocationRepo) GetByID(ctx context.Context, id string) (*entity.Location, error) {
	rows, err := r.q.Query(ctx, `SELECT `+locationColumns+` FROM locations WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("get location: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return toLocation(rows[0]), nil
}

// Update reescribe los campos editables y el estado.
func (r *LocationRepo) Update(ctx context.Context, l *entity.Location) error {
	query := `
		UPDATE locations SET code = ?, name = ?, address = ?, is_active = ?, updated_at = ?
		WHERE id = ?`
	err := r.q.Exec(ctx, query, l.Code, l.Name, l.Address, l.State.IsActive(), store.UTC(l.UpdatedAt), l.ID)
	if err != nil {
		return fmt.Errorf("update location: %w", err)
	}
	return nil
}

// ListActive plantas activas ordenadas por nombre.
func (r *LocationRepo) ListActive(ctx context.Context) ([]*entity.Location, error) {
	query := `SELECT ` + locationColumns + ` FROM locations WHERE is_active = ? ORDER BY name ASC`
	rows, err := r.q.Query(ctx, query, true)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	list := make([]*entity.Location, 0, len(rows))
	for _, row := range rows {
		list = append(list, toLocation(row))
	}
	return list, nil
}
