// Package directory mantiene el grafo planta -> división -> línea con baja lógica
// y una instantánea en memoria de los elementos activos para los consumidores de lectura.
package directory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/Planta-api/internal/application/dto"
	"github.com/jhoicas/Planta-api/internal/domain/entity"
	"github.com/jhoicas/Planta-api/internal/domain/repository"
	"github.com/jhoicas/Planta-api/internal/infrastructure/metrics"
	"github.com/jhoicas/Planta-api/pkg/logger"
)

// Snapshot elementos activos del directorio tras la última mutación.
type Snapshot struct {
	Locations   []dto.LocationResponse
	Divisions   []dto.DivisionResponse
	Lines       []dto.LineResponse
	RefreshedAt time.Time
}

// UseCase casos de uso del directorio de plantas.
type UseCase struct {
	locations repository.LocationRepository
	divisions repository.DivisionRepository
	lines     repository.LineRepository
	log       *logger.Logger
	metrics   *metrics.Metrics
	now       func() time.Time

	mu        sync.RWMutex
	snapshot  Snapshot
	listeners []func(Snapshot)
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	locations repository.LocationRepository,
	divisions repository.DivisionRepository,
	lines repository.LineRepository,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		locations: locations,
		divisions: divisions,
		lines:     lines,
		log:       log,
		metrics:   metrics.Default(),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Snapshot copia de la instantánea vigente.
func (uc *UseCase) Snapshot() Snapshot {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.snapshot
}

// OnChange registra fn para recibir la instantánea después de cada mutación.
func (uc *UseCase) OnChange(fn func(Snapshot)) {
	uc.mu.Lock()
	uc.listeners = append(uc.listeners, fn)
	uc.mu.Unlock()
}

// Refresh recarga la instantánea desde el almacén y avisa a los suscriptores.
func (uc *UseCase) Refresh(ctx context.Context) Snapshot {
	snap := Snapshot{
		Locations:   uc.ListLocations(ctx),
		Divisions:   uc.ListDivisions(ctx, ""),
		Lines:       uc.ListLines(ctx, ""),
		RefreshedAt: uc.now(),
	}

	uc.mu.Lock()
	uc.snapshot = snap
	listeners := append([](func(Snapshot))(nil), uc.listeners...)
	uc.mu.Unlock()

	for _, fn := range listeners {
		fn(snap)
	}
	return snap
}

func (uc *UseCase) mutated(ctx context.Context, kind, op string) {
	uc.metrics.DirectoryMutations.WithLabelValues(kind, op).Inc()
	uc.Refresh(ctx)
}

// degraded registra un fallo de lectura que se resuelve devolviendo una lista vacía.
func (uc *UseCase) degraded(op string, err error) {
	uc.metrics.DegradedReads.WithLabelValues(op).Inc()
	uc.log.Warn().Err(err).Str("op", op).Msg("listado degradado a vacío")
}

// nextState valida la transición; false si ya está en el estado pedido.
func nextState(cur entity.ActivityState, active bool) (entity.ActivityState, bool) {
	next := entity.ActivityFromBool(active)
	return next, cur.CanTransitionTo(next)
}

func activityOrDefault(v *bool) entity.ActivityState {
	if v == nil {
		return entity.StateActive
	}
	return entity.ActivityFromBool(*v)
}
