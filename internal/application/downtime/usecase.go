// Package downtime registra paradas de línea (pending -> approved | cancelled)
// y calcula las horas de capacidad que restan en una ventana.
package downtime

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/jhoicas/Planta-api/internal/application/dto"
	"github.com/jhoicas/Planta-api/internal/domain"
	"github.com/jhoicas/Planta-api/internal/domain/entity"
	"github.com/jhoicas/Planta-api/internal/domain/repository"
	"github.com/jhoicas/Planta-api/internal/infrastructure/metrics"
	"github.com/jhoicas/Planta-api/pkg/logger"
)

var hundred = decimal.NewFromInt(100)

// UseCase libro de paradas de línea.
type UseCase struct {
	repo    repository.DowntimeRepository
	lines   repository.LineRepository
	log     *logger.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
	now     func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.DowntimeRepository, lines repository.LineRepository, log *logger.Logger) *UseCase {
	return &UseCase{
		repo:    repo,
		lines:   lines,
		log:     log,
		metrics: metrics.Default(),
		tracer:  otel.Tracer("planta/downtime"),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Create registra una parada en estado pending.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateDowntimeRequest) (*dto.DowntimeResponse, error) {
	ctx, span := uc.tracer.Start(ctx, "downtime.Create")
	defer span.End()

	in.Normalize()
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if in.CreatedBy == "" {
		return nil, domain.NewValidationError("created_by", "es obligatorio")
	}

	now := uc.now()
	d := &entity.LineDowntime{
		LineID:                   in.LineID,
		Reason:                   in.Reason,
		Category:                 in.Category,
		StartDateTime:            in.StartDateTime.UTC(),
		EndDateTime:              in.EndDateTime.UTC(),
		DurationUnit:             entity.DurationUnit(in.DurationUnit),
		Recurrence:               entity.Recurrence(in.Recurrence),
		RecurrenceEndDate:        utcPtr(in.RecurrenceEndDate),
		ImpactType:               entity.ImpactType(in.ImpactType),
		CapacityReductionPercent: in.CapacityReductionPercent,
		Notes:                    in.Notes,
		CreatedBy:                in.CreatedBy,
		Status:                   entity.DowntimePending,
		CreatedAt:                now,
		UpdatedAt:                now,
	}
	if d.DurationUnit == "" {
		d.DurationUnit = entity.UnitHours
	}
	if d.Recurrence == "" {
		d.Recurrence = entity.RecurrenceNone
	}
	if in.Duration != nil {
		d.Duration = *in.Duration
	} else {
		d.Duration = windowHours(d.StartDateTime, d.EndDateTime)
		d.DurationUnit = entity.UnitHours
	}

	if err := validateRecord(d); err != nil {
		return nil, err
	}
	if err := uc.requireLine(ctx, d.LineID); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("downtime.id", d.ID), attribute.String("line.id", d.LineID))
	uc.metrics.DowntimeTransitions.WithLabelValues(string(entity.DowntimePending)).Inc()
	return toDowntimeResponse(d), nil
}

// Get obtiene una parada en cualquier estado.
func (uc *UseCase) Get(ctx context.Context, id string) (*dto.DowntimeResponse, error) {
	d, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDowntimeResponse(d), nil
}

// Update reescribe los campos enviados y revalida el registro resultante.
// Solo las pendientes se modifican: aprobadas y canceladas son definitivas.
func (uc *UseCase) Update(ctx context.Context, id string, in dto.UpdateDowntimeRequest) (*dto.DowntimeResponse, error) {
	ctx, span := uc.tracer.Start(ctx, "downtime.Update", trace.WithAttributes(attribute.String("downtime.id", id)))
	defer span.End()

	in.Normalize()
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	d, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if d.Status.Terminal() {
		return nil, fmt.Errorf("downtime %s %s: %w", id, d.Status, domain.ErrConflict)
	}
	if in.Empty() {
		return toDowntimeResponse(d), nil
	}

	lineChanged := in.LineID != nil && *in.LineID != d.LineID
	applyUpdate(d, in)
	if err := validateRecord(d); err != nil {
		return nil, err
	}
	if lineChanged {
		if err := uc.requireLine(ctx, d.LineID); err != nil {
			return nil, err
		}
	}
	d.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, d); err != nil {
		return nil, err
	}
	return toDowntimeResponse(d), nil
}

// Approve pending -> approved; approver queda registrado.
func (uc *UseCase) Approve(ctx context.Context, id, approver string) (*dto.DowntimeResponse, error) {
	if approver == "" {
		return nil, domain.NewValidationError("approved_by", "es obligatorio")
	}
	return uc.transition(ctx, id, entity.DowntimeApproved, approver)
}

// Cancel pending -> cancelled. La parada deja de contar para el impacto y del listado por defecto.
func (uc *UseCase) Cancel(ctx context.Context, id, user string) (*dto.DowntimeResponse, error) {
	return uc.transition(ctx, id, entity.DowntimeCancelled, user)
}

func (uc *UseCase) transition(ctx context.Context, id string, to entity.DowntimeStatus, user string) (*dto.DowntimeResponse, error) {
	ctx, span := uc.tracer.Start(ctx, "downtime.Transition", trace.WithAttributes(
		attribute.String("downtime.id", id),
		attribute.String("downtime.to", string(to)),
	))
	defer span.End()

	d, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !d.Status.CanTransitionTo(to) {
		return nil, fmt.Errorf("downtime %s: %s -> %s: %w", id, d.Status, to, domain.ErrConflict)
	}
	var approver *string
	if to == entity.DowntimeApproved {
		approver = &user
	}
	now := uc.now()
	if err := uc.repo.Transition(ctx, id, d.Status, to, approver, now); err != nil {
		return nil, err
	}
	d.Status = to
	if approver != nil {
		d.ApprovedBy = approver
	}
	d.UpdatedAt = now
	uc.metrics.DowntimeTransitions.WithLabelValues(string(to)).Inc()
	uc.log.Info().Str("downtime_id", id).Str("status", string(to)).Str("user", user).Msg("parada actualizada")
	return toDowntimeResponse(d), nil
}

// List paradas por línea/ventana, inicio más reciente primero. Ante un fallo del almacén devuelve lista vacía.
func (uc *UseCase) List(ctx context.Context, f dto.DowntimeListFilter) []dto.DowntimeResponse {
	filter := repository.DowntimeFilter{
		LineID:           f.LineID,
		From:             utcPtr(f.From),
		To:               utcPtr(f.To),
		Status:           entity.DowntimeStatus(f.Status),
		IncludeCancelled: f.IncludeCancelled || f.Status == string(entity.DowntimeCancelled),
		Limit:            f.Limit,
		Offset:           f.Offset,
	}
	list, err := uc.repo.List(ctx, filter)
	if err != nil {
		uc.metrics.DegradedReads.WithLabelValues("list_downtimes").Inc()
		uc.log.Warn().Err(err).Str("line_id", f.LineID).Msg("listado de paradas degradado a vacío")
		return []dto.DowntimeResponse{}
	}
	out := make([]dto.DowntimeResponse, 0, len(list))
	for _, d := range list {
		out = append(out, *toDowntimeResponse(d))
	}
	return out
}

func (uc *UseCase) get(ctx context.Context, id string) (*entity.LineDowntime, error) {
	d, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, fmt.Errorf("downtime %s: %w", id, domain.ErrNotFound)
	}
	return d, nil
}

func (uc *UseCase) requireLine(ctx context.Context, id string) error {
	l, err := uc.lines.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if l == nil {
		return &domain.ReferentialError{Field: "line_id", ID: id}
	}
	return nil
}

// applyUpdate copia los campos enviados. Si cambia la ventana sin duración explícita y la duración
// guardada era la de la ventana anterior, se vuelve a derivar de la nueva.
func applyUpdate(d *entity.LineDowntime, in dto.UpdateDowntimeRequest) {
	derived := d.DurationUnit == entity.UnitHours && d.Duration.Equal(windowHours(d.StartDateTime, d.EndDateTime))
	if in.LineID != nil {
		d.LineID = *in.LineID
	}
	if in.Reason != nil {
		d.Reason = *in.Reason
	}
	if in.Category != nil {
		d.Category = *in.Category
	}
	if in.StartDateTime != nil {
		d.StartDateTime = in.StartDateTime.UTC()
	}
	if in.EndDateTime != nil {
		d.EndDateTime = in.EndDateTime.UTC()
	}
	if in.Duration != nil {
		d.Duration = *in.Duration
	} else if derived && in.DurationUnit == nil && (in.StartDateTime != nil || in.EndDateTime != nil) {
		d.Duration = windowHours(d.StartDateTime, d.EndDateTime)
	}
	if in.DurationUnit != nil {
		d.DurationUnit = entity.DurationUnit(*in.DurationUnit)
	}
	if in.Recurrence != nil {
		d.Recurrence = entity.Recurrence(*in.Recurrence)
	}
	if in.RecurrenceEndDate != nil {
		d.RecurrenceEndDate = utcPtr(in.RecurrenceEndDate)
	}
	if in.ImpactType != nil {
		d.ImpactType = entity.ImpactType(*in.ImpactType)
	}
	if in.CapacityReductionPercent != nil {
		d.CapacityReductionPercent = in.CapacityReductionPercent
	}
	if in.Notes != nil {
		d.Notes = in.Notes
	}
}

// validateRecord reglas sobre el registro completo (alta o resultado de un update).
func validateRecord(d *entity.LineDowntime) error {
	if d.StartDateTime.IsZero() {
		return domain.NewValidationError("start_date_time", "es obligatorio")
	}
	if d.EndDateTime.Before(d.StartDateTime) {
		return domain.NewValidationError("end_date_time", "debe ser >= start_date_time")
	}
	if d.Duration.IsNegative() {
		return domain.NewValidationError("duration", "no puede ser negativa")
	}
	if p := d.CapacityReductionPercent; p != nil && (p.IsNegative() || p.GreaterThan(hundred)) {
		return domain.NewValidationError("capacity_reduction_percent", "debe estar entre 0 y 100")
	}
	if d.ImpactType == entity.ImpactPartial && d.CapacityReductionPercent == nil {
		return domain.NewValidationError("capacity_reduction_percent", "es obligatorio si impact_type = partial")
	}
	if d.Recurrence != entity.RecurrenceNone {
		if d.RecurrenceEndDate == nil {
			return domain.NewValidationError("recurrence_end_date", "es obligatorio si hay recurrencia")
		}
		if d.RecurrenceEndDate.Before(d.StartDateTime) {
			return domain.NewValidationError("recurrence_end_date", "debe ser >= start_date_time")
		}
	}
	return nil
}

func windowHours(from, to time.Time) decimal.Decimal {
	return decimal.NewFromFloat(to.Sub(from).Hours()).Round(4)
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

func toDowntimeResponse(d *entity.LineDowntime) *dto.DowntimeResponse {
	return &dto.DowntimeResponse{
		ID:                       d.ID,
		LineID:                   d.LineID,
		Reason:                   d.Reason,
		Category:                 d.Category,
		StartDateTime:            d.StartDateTime,
		EndDateTime:              d.EndDateTime,
		Duration:                 d.Duration,
		DurationUnit:             string(d.DurationUnit),
		DurationHours:            d.DurationHours(),
		Recurrence:               string(d.Recurrence),
		RecurrenceEndDate:        d.RecurrenceEndDate,
		ImpactType:               string(d.ImpactType),
		CapacityReductionPercent: d.CapacityReductionPercent,
		Notes:                    d.Notes,
		CreatedBy:                d.CreatedBy,
		ApprovedBy:               d.ApprovedBy,
		Status:                   string(d.Status),
		CreatedAt:                d.CreatedAt,
		UpdatedAt:                d.UpdatedAt,
	}
}
