package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Planta-api/internal/domain/entity"
)

// DowntimeFilter criterios de listado de paradas. Sin IncludeCancelled se excluyen las canceladas.
type DowntimeFilter struct {
	LineID           string
	From             *time.Time
	To               *time.Time
	Status           entity.DowntimeStatus
	IncludeCancelled bool
	Limit            int
	Offset           int
}

// DowntimeRepository puerto de persistencia para LineDowntime.
type DowntimeRepository interface {
	Create(ctx context.Context, d *entity.LineDowntime) error
	GetByID(ctx context.Context, id string) (*entity.LineDowntime, error)
	// Update campos descriptivos de una parada pendiente; ErrConflict si ya no lo está.
	Update(ctx context.Context, d *entity.LineDowntime) error
	// Transition cambia el estado solo si sigue en from; ErrConflict si no.
	Transition(ctx context.Context, id string, from, to entity.DowntimeStatus, approvedBy *string, at time.Time) error
	List(ctx context.Context, filter DowntimeFilter) ([]*entity.LineDowntime, error)

	// ListForImpact paradas de la línea con estado en statuses que pueden afectar [from, to]:
	// las que se solapan con la ventana y las recurrentes cuya recurrencia sigue vigente en ella.
	ListForImpact(ctx context.Context, lineID string, statuses []entity.DowntimeStatus, from, to time.Time) ([]*entity.LineDowntime, error)
}
