package directory

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Planta-api/internal/application/dto"
	"github.com/jhoicas/Planta-api/internal/domain"
	"github.com/jhoicas/Planta-api/internal/domain/entity"
)

var maxHoursPerDay = decimal.NewFromInt(24)

// ListLines líneas activas, opcionalmente de una división, con nombre y código de la división.
func (uc *UseCase) ListLines(ctx context.Context, divisionID string) []dto.LineResponse {
	list, err := uc.lines.ListActive(ctx, divisionID)
	if err != nil {
		uc.degraded("list_lines", err)
		return []dto.LineResponse{}
	}
	out := make([]dto.LineResponse, 0, len(list))
	for _, l := range list {
		out = append(out, *toLineResponse(l))
	}
	return out
}

// GetLine obtiene una línea, activa o no.
func (uc *UseCase) GetLine(ctx context.Context, id string) (*dto.LineResponse, error) {
	l, err := uc.getLine(ctx, id)
	if err != nil {
		return nil, err
	}
	return toLineResponse(l), nil
}

// CreateLine da de alta una línea; la división debe existir.
func (uc *UseCase) CreateLine(ctx context.Context, in dto.CreateLineRequest) (*dto.LineResponse, error) {
	in.Normalize()
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	hours := entity.DefaultHoursPerDay
	if in.HoursPerDay != nil {
		hours = *in.HoursPerDay
	}
	if err := validateHoursPerDay(hours); err != nil {
		return nil, err
	}
	if err := uc.requireDivision(ctx, in.DivisionID); err != nil {
		return nil, err
	}
	now := uc.now()
	l := &entity.Line{
		DivisionID:  in.DivisionID,
		Code:        in.Code,
		Name:        in.Name,
		Description: in.Description,
		HoursPerDay: hours,
		State:       activityOrDefault(in.IsActive),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.lines.Create(ctx, l); err != nil {
		return nil, err
	}
	uc.mutated(ctx, "line", "create")
	return uc.GetLine(ctx, l.ID)
}

// UpdateLine reescribe solo los campos enviados.
func (uc *UseCase) UpdateLine(ctx context.Context, id string, in dto.UpdateLineRequest) (*dto.LineResponse, error) {
	in.Normalize()
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	l, err := uc.getLine(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Empty() {
		return toLineResponse(l), nil
	}
	if in.DivisionID != nil && *in.DivisionID != l.DivisionID {
		if err := uc.requireDivision(ctx, *in.DivisionID); err != nil {
			return nil, err
		}
		l.DivisionID = *in.DivisionID
	}
	if in.Code != nil {
		l.Code = *in.Code
	}
	if in.Name != nil {
		l.Name = *in.Name
	}
	if in.Description != nil {
		l.Description = in.Description
	}
	if in.HoursPerDay != nil {
		if err := validateHoursPerDay(*in.HoursPerDay); err != nil {
			return nil, err
		}
		l.HoursPerDay = *in.HoursPerDay
	}
	if in.IsActive != nil {
		l.State = entity.ActivityFromBool(*in.IsActive)
	}
	l.UpdatedAt = uc.now()
	if err := uc.lines.Update(ctx, l); err != nil {
		return nil, err
	}
	uc.mutated(ctx, "line", "update")
	return uc.GetLine(ctx, l.ID)
}

// DeactivateLine baja lógica; sus paradas e impacto siguen consultables.
func (uc *UseCase) DeactivateLine(ctx context.Context, id string) (*dto.LineResponse, error) {
	return uc.setLineActive(ctx, id, false)
}

// ReactivateLine revierte la baja lógica.
func (uc *UseCase) ReactivateLine(ctx context.Context, id string) (*dto.LineResponse, error) {
	return uc.setLineActive(ctx, id, true)
}

func (uc *UseCase) setLineActive(ctx context.Context, id string, active bool) (*dto.LineResponse, error) {
	l, err := uc.getLine(ctx, id)
	if err != nil {
		return nil, err
	}
	next, ok := nextState(l.State, active)
	if !ok {
		return toLineResponse(l), nil
	}
	l.State = next
	l.UpdatedAt = uc.now()
	if err := uc.lines.Update(ctx, l); err != nil {
		return nil, err
	}
	uc.mutated(ctx, "line", next.String())
	return toLineResponse(l), nil
}

func (uc *UseCase) getLine(ctx context.Context, id string) (*entity.Line, error) {
	l, err := uc.lines.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, fmt.Errorf("line %s: %w", id, domain.ErrNotFound)
	}
	return l, nil
}

func (uc *UseCase) requireDivision(ctx context.Context, id string) error {
	d, err := uc.divisions.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if d == nil {
		return &domain.ReferentialError{Field: "division_id", ID: id}
	}
	return nil
}

func validateHoursPerDay(h decimal.Decimal) error {
	if !h.IsPositive() || h.GreaterThan(maxHoursPerDay) {
		return domain.NewValidationError("hours_per_day", "debe estar entre 0 (excluido) y 24")
	}
	return nil
}

func toLineResponse(l *entity.Line) *dto.LineResponse {
	return &dto.LineResponse{
		ID:           l.ID,
		DivisionID:   l.DivisionID,
		Code:         l.Code,
		Name:         l.Name,
		Description:  l.Description,
		HoursPerDay:  l.HoursPerDay,
		IsActive:     l.State.IsActive(),
		DivisionName: l.DivisionName,
		DivisionCode: l.DivisionCode,
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}
}
