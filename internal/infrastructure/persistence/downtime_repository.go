package persistence

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Planta-api/internal/domain"
	"github.com/jhoicas/Planta-api/internal/domain/entity"
	"github.com/jhoicas/Planta-api/internal/domain/repository"
	"github.com/jhoicas/Planta-api/internal/infrastructure/store"
)

var _ repository.DowntimeRepository = (*DowntimeRepo)(nil)

const downtimeColumns = `id, line_id, reason, category, start_date_time, end_date_time, duration, duration_unit,
	recurrence, recurrence_end_date, impact_type, capacity_reduction_percent, notes, created_by, approved_by,
	status, created_at, updated_at`

// DowntimeRepo implementación de DowntimeRepository.
type DowntimeRepo struct {
	q store.Querier
}

// NewDowntimeRepository construye el adaptador.
func NewDowntimeRepository(q store.Querier) *DowntimeRepo {
	return &DowntimeRepo{q: q}
}

// Create persiste una parada.
func (r *DowntimeRepo) Create(ctx context.Context, d *entity.LineDowntime) error {
	if d.ID == "" {
		d.ID = r.q.NewID()
	}
	query := `INSERT INTO line_downtimes (` + downtimeColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	err := r.q.Exec(ctx, query,
		d.ID, d.LineID, d.Reason, d.Category, store.UTC(d.StartDateTime), store.UTC(d.EndDateTime),
		d.Duration, string(d.DurationUnit), string(d.Recurrence), store.UTCPtr(d.RecurrenceEndDate),
		string(d.ImpactType), d.CapacityReductionPercent, d.Notes, d.CreatedBy, d.ApprovedBy,
		string(d.Status), store.UTC(d.CreatedAt), store.UTC(d.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert line downtime: %w", err)
	}
	return nil
}

// GetByID obtiene una parada por ID (cualquier estado).
func (r *DowntimeRepo) GetByID(ctx context.Context, id string) (*entity.LineDowntime, error) {
	rows, err := r.q.Query(ctx, `SELECT `+downtimeColumns+` FROM line_downtimes WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("get line downtime: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return toDowntime(rows[0]), nil
}

// Update reescribe los campos descriptivos de una parada que sigue pendiente.
// El estado no se toca aquí; si la parada ya no está pendiente devuelve ErrConflict.
func (r *DowntimeRepo) Update(ctx context.Context, d *entity.LineDowntime) error {
	query := `
		UPDATE line_downtimes SET
			line_id = ?, reason = ?, category = ?, start_date_time = ?, end_date_time = ?, duration = ?,
			duration_unit = ?, recurrence = ?, recurrence_end_date = ?, impact_type = ?,
			capacity_reduction_percent = ?, notes = ?, updated_at = ?
		WHERE id = ? AND status = ?
		RETURNING id`
	rows, err := r.q.Query(ctx, query,
		d.LineID, d.Reason, d.Category, store.UTC(d.StartDateTime), store.UTC(d.EndDateTime), d.Duration,
		string(d.DurationUnit), string(d.Recurrence), store.UTCPtr(d.RecurrenceEndDate), string(d.ImpactType),
		d.CapacityReductionPercent, d.Notes, store.UTC(d.UpdatedAt),
		d.ID, string(entity.DowntimePending),
	)
	if err != nil {
		return fmt.Errorf("update line downtime: %w", err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("line downtime %s no está pendiente: %w", d.ID, domain.ErrConflict)
	}
	return nil
}

// Transition mueve la parada de from a to en una sola sentencia condicionada al estado actual.
// Si otro proceso la movió antes devuelve ErrConflict.
func (r *DowntimeRepo) Transition(
	ctx context.Context,
	id string,
	from, to entity.DowntimeStatus,
	approvedBy *string,
	at time.Time,
) error {
	query := `
		UPDATE line_downtimes SET status = ?, approved_by = COALESCE(?, approved_by), updated_at = ?
		WHERE id = ? AND status = ?
		RETURNING id`
	rows, err := r.q.Query(ctx, query, string(to), approvedBy, store.UTC(at), id, string(from))
	if err != nil {
		return fmt.Errorf("transition line downtime: %w", err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("line downtime %s: %s -> %s: %w", id, from, to, domain.ErrConflict)
	}
	return nil
}

// List paradas por línea/ventana/estado, inicio más reciente primero.
func (r *DowntimeRepo) List(ctx context.Context, f repository.DowntimeFilter) ([]*entity.LineDowntime, error) {
	var (
		conds []string
		args  []any
	)
	if f.LineID != "" {
		conds = append(conds, "line_id = ?")
		args = append(args, f.LineID)
	}
	if f.From != nil {
		conds = append(conds, "end_date_time >= ?")
		args = append(args, store.UTC(*f.From))
	}
	if f.To != nil {
		conds = append(conds, "start_date_time <= ?")
		args = append(args, store.UTC(*f.To))
	}
	if f.Status != "" {
		conds = append(conds, "status = ?")
		args = append(args, string(f.Status))
	}
	if !f.IncludeCancelled {
		conds = append(conds, "status <> ?")
		args = append(args, string(entity.DowntimeCancelled))
	}

	query := `SELECT ` + downtimeColumns + ` FROM line_downtimes`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY start_date_time DESC`
	if f.Limit > 0 {
		query += ` LIMIT ? OFFSET ?`
		args = append(args, f.Limit, f.Offset)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list line downtimes: %w", err)
	}
	list := make([]*entity.LineDowntime, 0, len(rows))
	for _, row := range rows {
		list = append(list, toDowntime(row))
	}
	return list, nil
}

// ListForImpact candidatas para el cálculo de impacto; el filtrado fino por ocurrencia se hace en dominio.
func (r *DowntimeRepo) ListForImpact(
	ctx context.Context,
	lineID string,
	statuses []entity.DowntimeStatus,
	from, to time.Time,
) ([]*entity.LineDowntime, error) {
	if len(statuses) == 0 {
		return nil, nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(statuses)), ", ")
	query := `SELECT ` + downtimeColumns + ` FROM line_downtimes
		WHERE line_id = ?
		  AND status IN (` + placeholders + `)
		  AND start_date_time <= ?
		  AND (end_date_time >= ? OR (recurrence <> 'none' AND recurrence_end_date >= ?))
		ORDER BY start_date_time ASC`

	args := []any{lineID}
	for _, s := range statuses {
		args = append(args, string(s))
	}
	args = append(args, store.UTC(to), store.UTC(from), store.UTC(from))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list downtimes for impact: %w", err)
	}
	list := make([]*entity.LineDowntime, 0, len(rows))
	for _, row := range rows {
		list = append(list, toDowntime(row))
	}
	return list, nil
}
