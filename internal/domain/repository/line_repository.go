package repository

import (
	"context"

	"github.com/jhoicas/Planta-api/internal/domain/entity"
)

// LineRepository puerto de persistencia para Line.
type LineRepository interface {
	Create(ctx context.Context, line *entity.Line) error
	GetByID(ctx context.Context, id string) (*entity.Line, error)
	Update(ctx context.Context, line *entity.Line) error
	ListActive(ctx context.Context, divisionID string) ([]*entity.Line, error)
}
