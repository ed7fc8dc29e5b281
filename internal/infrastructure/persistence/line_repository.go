package persistence

import (
	"context"
	"fmt"

	"github.com/jhoicas/Planta-api/internal/domain/entity"
	"github.com/jhoicas/Planta-api/internal/domain/repository"
	"github.com/jhoicas/Planta-api/internal/infrastructure/store"
)

var _ repository.LineRepository = (*LineRepo)(nil)

const lineSelect = `
	SELECT ln.id, ln.division_id, ln.code, ln.name, ln.description, ln.hours_per_day, ln.is_active,
	       ln.created_at, ln.updated_at,
	       d.name AS division_name, d.code AS division_code
	FROM lines ln
	LEFT JOIN divisions d ON d.id = ln.division_id`

// LineRepo implementación de LineRepository.
type LineRepo struct {
	q store.Querier
}

// NewLineRepository construye el adaptador.
func NewLineRepository(q store.Querier) *LineRepo {
	return &LineRepo{q: q}
}

// Create persiste una línea.
func (r *LineRepo) Create(ctx context.Context, l *entity.Line) error {
	if l.ID == "" {
		l.ID = r.q.NewID()
	}
	query := `
		INSERT INTO lines (id, division_id, code, name, description, hours_per_day, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	if err := r.q.Exec(ctx, query, lineArgs(l)...); err != nil {
		return fmt.Errorf("insert line: %w", err)
	}
	return nil
}

// GetByID obtiene una línea con el nombre y código de su división.
func (r *LineRepo) GetByID(ctx context.Context, id string) (*entity.Line, error) {
	rows, err := r.q.Query(ctx, lineSelect+` WHERE ln.id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("get line: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return toLine(rows[0]), nil
}

// Update reescribe los campos editables y el estado.
func (r *LineRepo) Update(ctx context.Context, l *entity.Line) error {
	query := `
		UPDATE lines SET division_id = ?, code = ?, name = ?, description = ?, hours_per_day = ?,
		       is_active = ?, updated_at = ?
		WHERE id = ?`
	err := r.q.Exec(ctx, query,
		l.DivisionID, l.Code, l.Name, l.Description, l.HoursPerDay,
		l.State.IsActive(), store.UTC(l.UpdatedAt), l.ID,
	)
	if err != nil {
		return fmt.Errorf("update line: %w", err)
	}
	return nil
}

// ListActive líneas activas (opcionalmente de una división) ordenadas por nombre.
func (r *LineRepo) ListActive(ctx context.Context, divisionID string) ([]*entity.Line, error) {
	query := lineSelect + ` WHERE ln.is_active = ?`
	args := []any{true}
	if divisionID != "" {
		query += ` AND ln.division_id = ?`
		args = append(args, divisionID)
	}
	query += ` ORDER BY ln.name ASC`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list lines: %w", err)
	}
	list := make([]*entity.Line, 0, len(rows))
	for _, row := range rows {
		list = append(list, toLine(row))
	}
	return list, nil
}
