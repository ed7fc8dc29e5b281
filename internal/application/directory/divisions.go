package directory

import (
	"context"
	"fmt"

	"github.com/jhoicas/Planta-api/internal/application/dto"
	"github.com/jhoicas/Planta-api/internal/domain"
	"github.com/jhoicas/Planta-api/internal/domain/entity"
)

// ListDivisions divisiones activas, opcionalmente de una planta, con nombre y código de la planta.
func (uc *UseCase) ListDivisions(ctx context.Context, locationID string) []dto.DivisionResponse {
	list, err := uc.divisions.ListActive(ctx, locationID)
	if err != nil {
		uc.degraded("list_divisions", err)
		return []dto.DivisionResponse{}
	}
	out := make([]dto.DivisionResponse, 0, len(list))
	for _, d := range list {
		out = append(out, *toDivisionResponse(d))
	}
	return out
}

// GetDivision obtiene una división, activa o no.
func (uc *UseCase) GetDivision(ctx context.Context, id string) (*dto.DivisionResponse, error) {
	d, err := uc.getDivision(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDivisionResponse(d), nil
}

// CreateDivision da de alta una división; la planta debe existir.
func (uc *UseCase) CreateDivision(ctx context.Context, in dto.CreateDivisionRequest) (*dto.DivisionResponse, error) {
	in.Normalize()
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if err := uc.requireLocation(ctx, in.LocationID); err != nil {
		return nil, err
	}
	now := uc.now()
	d := &entity.Division{
		LocationID: in.LocationID,
		Code:       in.Code,
		Name:       in.Name,
		State:      activityOrDefault(in.IsActive),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.divisions.Create(ctx, d); err != nil {
		return nil, err
	}
	uc.mutated(ctx, "division", "create")
	// releer para devolver los datos de la planta
	return uc.GetDivision(ctx, d.ID)
}

// UpdateDivision reescribe solo los campos enviados.
func (uc *UseCase) UpdateDivision(ctx context.Context, id string, in dto.UpdateDivisionRequest) (*dto.DivisionResponse, error) {
	in.Normalize()
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	d, err := uc.getDivision(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Empty() {
		return toDivisionResponse(d), nil
	}
	if in.LocationID != nil && *in.LocationID != d.LocationID {
		if err := uc.requireLocation(ctx, *in.LocationID); err != nil {
			return nil, err
		}
		d.LocationID = *in.LocationID
	}
	if in.Code != nil {
		d.Code = *in.Code
	}
	if in.Name != nil {
		d.Name = *in.Name
	}
	if in.IsActive != nil {
		d.State = entity.ActivityFromBool(*in.IsActive)
	}
	d.UpdatedAt = uc.now()
	if err := uc.divisions.Update(ctx, d); err != nil {
		return nil, err
	}
	uc.mutated(ctx, "division", "update")
	return uc.GetDivision(ctx, d.ID)
}

// DeactivateDivision baja lógica; sus líneas siguen listándose por division_id.
func (uc *UseCase) DeactivateDivision(ctx context.Context, id string) (*dto.DivisionResponse, error) {
	return uc.setDivisionActive(ctx, id, false)
}

// ReactivateDivision revierte la baja lógica.
func (uc *UseCase) ReactivateDivision(ctx context.Context, id string) (*dto.DivisionResponse, error) {
	return uc.setDivisionActive(ctx, id, true)
}

func (uc *UseCase) setDivisionActive(ctx context.Context, id string, active bool) (*dto.DivisionResponse, error) {
	d, err := uc.getDivision(ctx, id)
	if err != nil {
		return nil, err
	}
	next, ok := nextState(d.State, active)
	if !ok {
		return toDivisionResponse(d), nil
	}
	d.State = next
	d.UpdatedAt = uc.now()
	if err := uc.divisions.Update(ctx, d); err != nil {
		return nil, err
	}
	uc.mutated(ctx, "division", next.String())
	return toDivisionResponse(d), nil
}

func (uc *UseCase) getDivision(ctx context.Context, id string) (*entity.Division, error) {
	d, err := uc.divisions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, fmt.Errorf("division %s: %w", id, domain.ErrNotFound)
	}
	return d, nil
}

func (uc *UseCase) requireLocation(ctx context.Context, id string) error {
	l, err := uc.locations.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if l == nil {
		return &domain.ReferentialError{Field: "location_id", ID: id}
	}
	return nil
}

func toDivisionResponse(d *entity.Division) *dto.DivisionResponse {
	return &dto.DivisionResponse{
		ID:           d.ID,
		LocationID:   d.LocationID,
		Code:         d.Code,
		Name:         d.Name,
		IsActive:     d.State.IsActive(),
		LocationName: d.LocationName,
		LocationCode: d.LocationCode,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}
