package repository

import (
	"context"

	"github.com/jhoicas/Planta-api/internal/domain/entity"
)

// LocationRepository define el puerto de persistencia para Location (DIP).
// GetByID devuelve (nil, nil) si no existe.
type LocationRepository interface {
	Create(ctx context.Context, location *entity.Location) error
	GetByID(ctx context.Context, id string) (*entity.Location, error)
	Update(ctx context.Context, location *entity.Location) error
	ListActive(ctx context.Context) ([]*entity.Location, error)
}
