package downtime

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/jhoicas/Planta-api/internal/application/dto"
	"github.com/jhoicas/Planta-api/internal/domain"
	impact "github.com/jhoicas/Planta-api/internal/domain/downtime"
	"github.com/jhoicas/Planta-api/internal/domain/entity"
)

var (
	committedStatuses = []entity.DowntimeStatus{entity.DowntimeApproved}
	forecastStatuses  = []entity.DowntimeStatus{entity.DowntimePending, entity.DowntimeApproved}
)

// ComputeImpact horas de capacidad perdidas por paradas aprobadas de la línea que se solapan con [from, to].
// full cuenta la duración completa; partial, duración × porcentaje / 100. Sin registros devuelve 0.
// Los errores del almacén se propagan.
func (uc *UseCase) ComputeImpact(ctx context.Context, lineID string, from, to time.Time) (decimal.Decimal, error) {
	ctx, span := uc.startImpactSpan(ctx, "downtime.ComputeImpact", lineID, from, to)
	defer span.End()
	defer uc.observe("committed", time.Now())

	from, to, err := checkWindow(from, to)
	if err != nil {
		return decimal.Zero, err
	}
	records, err := uc.repo.ListForImpact(ctx, lineID, committedStatuses, from, to)
	if err != nil {
		return decimal.Zero, fmt.Errorf("compute impact: %w", err)
	}
	return impact.CommittedImpact(records, lineID, from, to), nil
}

// ForecastImpact igual que ComputeImpact pero contando también pendientes y cada repetición
// de las paradas recurrentes dentro de la ventana. No altera ComputeImpact.
func (uc *UseCase) ForecastImpact(ctx context.Context, lineID string, from, to time.Time) (decimal.Decimal, error) {
	ctx, span := uc.startImpactSpan(ctx, "downtime.ForecastImpact", lineID, from, to)
	defer span.End()
	defer uc.observe("forecast", time.Now())

	from, to, err := checkWindow(from, to)
	if err != nil {
		return decimal.Zero, err
	}
	records, err := uc.repo.ListForImpact(ctx, lineID, forecastStatuses, from, to)
	if err != nil {
		return decimal.Zero, fmt.Errorf("forecast impact: %w", err)
	}
	return impact.ForecastImpact(records, lineID, from, to), nil
}

// Impact ambas cifras para la línea.
func (uc *UseCase) Impact(ctx context.Context, lineID string, from, to time.Time) (*dto.ImpactResponse, error) {
	hours, err := uc.ComputeImpact(ctx, lineID, from, to)
	if err != nil {
		return nil, err
	}
	forecast, err := uc.ForecastImpact(ctx, lineID, from, to)
	if err != nil {
		return nil, err
	}
	return &dto.ImpactResponse{
		LineID:        lineID,
		From:          from.UTC(),
		To:            to.UTC(),
		Hours:         hours,
		ForecastHours: forecast,
	}, nil
}

// Capacity horas planificadas de la línea frente a las perdidas por paradas.
func (uc *UseCase) Capacity(ctx context.Context, lineID string, from, to time.Time) (*dto.CapacityResponse, error) {
	line, err := uc.lines.GetByID(ctx, lineID)
	if err != nil {
		return nil, err
	}
	if line == nil {
		return nil, fmt.Errorf("line %s: %w", lineID, domain.ErrNotFound)
	}
	imp, err := uc.Impact(ctx, lineID, from, to)
	if err != nil {
		return nil, err
	}

	planned := impact.PlannedHours(line.HoursPerDay, imp.From, imp.To)
	available := planned.Sub(imp.Hours)
	if available.IsNegative() {
		available = decimal.Zero
	}
	loss := decimal.Zero
	if planned.IsPositive() {
		loss = imp.Hours.Div(planned).Mul(hundred).Round(2)
	}
	return &dto.CapacityResponse{
		LineID:         line.ID,
		LineCode:       line.Code,
		LineName:       line.Name,
		From:           imp.From,
		To:             imp.To,
		PlannedHours:   planned,
		LostHours:      imp.Hours,
		ForecastHours:  imp.ForecastHours,
		AvailableHours: available,
		LossPercent:    loss,
	}, nil
}

func checkWindow(from, to time.Time) (time.Time, time.Time, error) {
	if from.IsZero() || to.IsZero() {
		return from, to, domain.NewValidationError("from/to", "son obligatorios")
	}
	if to.Before(from) {
		return from, to, domain.NewValidationError("to", "debe ser >= from")
	}
	return from.UTC(), to.UTC(), nil
}

func (uc *UseCase) startImpactSpan(ctx context.Context, name, lineID string, from, to time.Time) (context.Context, trace.Span) {
	return uc.tracer.Start(ctx, name, trace.WithAttributes(
		attribute.String("line.id", lineID),
		attribute.String("window.from", from.UTC().Format(time.RFC3339)),
		attribute.String("window.to", to.UTC().Format(time.RFC3339)),
	))
}

func (uc *UseCase) observe(kind string, started time.Time) {
	uc.metrics.ImpactDuration.WithLabelValues(kind).Observe(time.Since(started).Seconds())
}
