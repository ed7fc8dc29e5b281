package directory

import (
	"context"
	"fmt"

	"github.com/jhoicas/Planta-api/internal/application/dto"
	"github.com/jhoicas/Planta-api/internal/domain"
	"github.com/jhoicas/Planta-api/internal/domain/entity"
)

// ListLocations plantas activas ordenadas por nombre. Ante un fallo del almacén devuelve lista vacía.
func (uc *UseCase) ListLocations(ctx context.Context) []dto.LocationResponse {
	list, err := uc.locations.ListActive(ctx)
	if err != nil {
		uc.degraded("list_locations", err)
		return []dto.LocationResponse{}
	}
	out := make([]dto.LocationResponse, 0, len(list))
	for _, l := range list {
		out = append(out, *toLocationResponse(l))
	}
	return out
}

// GetLocation obtiene una planta, activa o no.
func (uc *UseCase) GetLocation(ctx context.Context, id string) (*dto.LocationResponse, error) {
	l, err := uc.getLocation(ctx, id)
	if err != nil {
		return nil, err
	}
	return toLocationResponse(l), nil
}

// CreateLocation da de alta una planta; activa salvo que se indique lo contrario.
func (uc *UseCase) CreateLocation(ctx context.Context, in dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	in.Normalize()
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	now := uc.now()
	l := &entity.Location{
		Code:      in.Code,
		Name:      in.Name,
		Address:   in.Address,
		State:     activityOrDefault(in.IsActive),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.locations.Create(ctx, l); err != nil {
		return nil, err
	}
	uc.mutated(ctx, "location", "create")
	return toLocationResponse(l), nil
}

// UpdateLocation reescribe solo los campos enviados. Sin campos no escribe nada.
func (uc *UseCase) UpdateLocation(ctx context.Context, id string, in dto.UpdateLocationRequest) (*dto.LocationResponse, error) {
	in.Normalize()
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	l, err := uc.getLocation(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Empty() {
		return toLocationResponse(l), nil
	}
	if in.Code != nil {
		l.Code = *in.Code
	}
	if in.Name != nil {
		l.Name = *in.Name
	}
	if in.Address != nil {
		l.Address = in.Address
	}
	if in.IsActive != nil {
		l.State = entity.ActivityFromBool(*in.IsActive)
	}
	l.UpdatedAt = uc.now()
	if err := uc.locations.Update(ctx, l); err != nil {
		return nil, err
	}
	uc.mutated(ctx, "location", "update")
	return toLocationResponse(l), nil
}

// DeactivateLocation baja lógica; sus divisiones siguen listándose por location_id.
func (uc *UseCase) DeactivateLocation(ctx context.Context, id string) (*dto.LocationResponse, error) {
	return uc.setLocationActive(ctx, id, false)
}

// ReactivateLocation revierte la baja lógica.
func (uc *UseCase) ReactivateLocation(ctx context.Context, id string) (*dto.LocationResponse, error) {
	return uc.setLocationActive(ctx, id, true)
}

func (uc *UseCase) setLocationActive(ctx context.Context, id string, active bool) (*dto.LocationResponse, error) {
	l, err := uc.getLocation(ctx, id)
	if err != nil {
		return nil, err
	}
	next, ok := nextState(l.State, active)
	if !ok {
		return toLocationResponse(l), nil
	}
	l.State = next
	l.UpdatedAt = uc.now()
	if err := uc.locations.Update(ctx, l); err != nil {
		return nil, err
	}
	uc.mutated(ctx, "location", next.String())
	return toLocationResponse(l), nil
}

func (uc *UseCase) getLocation(ctx context.Context, id string) (*entity.Location, error) {
	l, err := uc.locations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, fmt.Errorf("location %s: %w", id, domain.ErrNotFound)
	}
	return l, nil
}

func toLocationResponse(l *entity.Location) *dto.LocationResponse {
	return &dto.LocationResponse{
		ID:        l.ID,
		Code:      l.Code,
		Name:      l.Name,
		Address:   l.Address,
		IsActive:  l.State.IsActive(),
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}
