package repository

import (
	"context"

	"github.com/jhoicas/Planta-api/internal/domain/entity"
)

// DivisionRepository puerto de persistencia para Division.
// ListActive filtra por locationID si no es vacío y resuelve LocationName/LocationCode por join.
type DivisionRepository interface {
	Create(ctx context.Context, division *entity.Division) error
	GetByID(ctx context.Context, id string) (*entity.Division, error)
	Update(ctx context.Context, division *entity.Division) error
	ListActive(ctx context.Context, locationID string) ([]*entity.Division, error)
}
