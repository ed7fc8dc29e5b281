package downtime_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Planta-api/internal/application/downtime"
	"github.com/jhoicas/Planta-api/internal/application/dto"
	"github.com/jhoicas/Planta-api/internal/domain"
	"github.com/jhoicas/Planta-api/internal/domain/entity"
	"github.com/jhoicas/Planta-api/internal/domain/repository"
	"github.com/jhoicas/Planta-api/internal/infrastructure/persistence"
	"github.com/jhoicas/Planta-api/internal/testutil"
	"github.com/jhoicas/Planta-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

var day = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

func setup(t *testing.T) (*downtime.UseCase, testutil.Hierarchy) {
	t.Helper()
	s := testutil.NewStore(t)
	h := testutil.SeedHierarchy(t, s)
	uc := downtime.NewUseCase(persistence.NewDowntimeRepository(s), persistence.NewLineRepository(s), logger.Nop())
	return uc, h
}

func request(lineID string, start time.Time, hours int) dto.CreateDowntimeRequest {
	return dto.CreateDowntimeRequest{
		LineID:        lineID,
		Reason:        "Die change",
		Category:      entity.CategoryChangeover,
		StartDateTime: start,
		EndDateTime:   start.Add(time.Duration(hours) * time.Hour),
		ImpactType:    string(entity.ImpactFull),
		CreatedBy:     "planner",
	}
}

func pct(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

// ──────────────────────────────────────────────────────────────────────────────
// Alta y transiciones
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_QuedaPendienteYDerivaDuracion(t *testing.T) {
	uc, h := setup(t)

	got, err := uc.Create(context.Background(), request(h.LineID, day.Add(8*time.Hour), 6))
	require.NoError(t, err)
	assert.Equal(t, string(entity.DowntimePending), got.Status)
	assert.True(t, got.Duration.Equal(decimal.NewFromInt(6)), got.Duration.String())
	assert.Equal(t, string(entity.UnitHours), got.DurationUnit)
	assert.Equal(t, string(entity.RecurrenceNone), got.Recurrence)
}

func TestCreate_Validaciones(t *testing.T) {
	uc, h := setup(t)
	ctx := context.Background()

	inverted := request(h.LineID, day, 2)
	inverted.EndDateTime = day.Add(-time.Hour)
	_, err := uc.Create(ctx, inverted)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	partial := request(h.LineID, day, 2)
	partial.ImpactType = string(entity.ImpactPartial)
	_, err = uc.Create(ctx, partial)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "capacity_reduction_percent", verr.Field)

	partial.CapacityReductionPercent = pct(120)
	_, err = uc.Create(ctx, partial)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	recurring := request(h.LineID, day, 2)
	recurring.Recurrence = string(entity.RecurrenceWeekly)
	_, err = uc.Create(ctx, recurring)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	noUser := request(h.LineID, day, 2)
	noUser.CreatedBy = ""
	_, err = uc.Create(ctx, noUser)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_LineaInexistente(t *testing.T) {
	uc, _ := setup(t)
	_, err := uc.Create(context.Background(), request("nope", day, 2))
	assert.ErrorIs(t, err, domain.ErrReferential)
}

func TestTransiciones(t *testing.T) {
	uc, h := setup(t)
	ctx := context.Background()

	a, err := uc.Create(ctx, request(h.LineID, day, 2))
	require.NoError(t, err)

	_, err = uc.Approve(ctx, a.ID, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	approved, err := uc.Approve(ctx, a.ID, "supervisor")
	require.NoError(t, err)
	assert.Equal(t, string(entity.DowntimeApproved), approved.Status)
	require.NotNil(t, approved.ApprovedBy)
	assert.Equal(t, "supervisor", *approved.ApprovedBy)

	_, err = uc.Cancel(ctx, a.ID, "planner")
	assert.ErrorIs(t, err, domain.ErrConflict)

	// una aprobada ya no se edita: el impacto comprometido no cambia sin nueva aprobación
	before, err := uc.ComputeImpact(ctx, h.LineID, day, day.Add(24*time.Hour))
	require.NoError(t, err)
	longer := decimal.NewFromInt(100)
	_, err = uc.Update(ctx, a.ID, dto.UpdateDowntimeRequest{Duration: &longer})
	assert.ErrorIs(t, err, domain.ErrConflict)
	after, err := uc.ComputeImpact(ctx, h.LineID, day, day.Add(24*time.Hour))
	require.NoError(t, err)
	assert.True(t, before.Equal(decimal.NewFromInt(2)), before.String())
	assert.True(t, after.Equal(before), after.String())

	b, err := uc.Create(ctx, request(h.LineID, day, 2))
	require.NoError(t, err)
	_, err = uc.Cancel(ctx, b.ID, "planner")
	require.NoError(t, err)

	reason := "otro motivo"
	_, err = uc.Update(ctx, b.ID, dto.UpdateDowntimeRequest{Reason: &reason})
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = uc.Approve(ctx, "nope", "supervisor")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTransiciones_ConcurrentesSoloUnaGana(t *testing.T) {
	uc, h := setup(t)
	ctx := context.Background()
	d, err := uc.Create(ctx, request(h.LineID, day, 2))
	require.NoError(t, err)

	const n = 10
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				_, errs[i] = uc.Approve(ctx, d.ID, "supervisor")
			} else {
				_, errs[i] = uc.Cancel(ctx, d.ID, "planner")
			}
		}(i)
	}
	wg.Wait()

	winner := -1
	for i, err := range errs {
		if err == nil {
			assert.Equal(t, -1, winner, "más de una transición aplicada")
			winner = i
			continue
		}
		assert.ErrorIs(t, err, domain.ErrConflict)
	}
	require.NotEqual(t, -1, winner)

	got, err := uc.Get(ctx, d.ID)
	require.NoError(t, err)
	if winner%2 == 0 {
		assert.Equal(t, string(entity.DowntimeApproved), got.Status)
	} else {
		assert.Equal(t, string(entity.DowntimeCancelled), got.Status)
	}
}

func TestUpdate_VentanaRederivaDuracion(t *testing.T) {
	uc, h := setup(t)
	ctx := context.Background()

	derived, err := uc.Create(ctx, request(h.LineID, day, 2))
	require.NoError(t, err)
	end := day.Add(10 * time.Hour)
	got, err := uc.Update(ctx, derived.ID, dto.UpdateDowntimeRequest{EndDateTime: &end})
	require.NoError(t, err)
	assert.True(t, got.Duration.Equal(decimal.NewFromInt(10)), got.Duration.String())

	explicit := request(h.LineID, day, 2)
	one := decimal.NewFromInt(1)
	explicit.Duration = &one
	fixed, err := uc.Create(ctx, explicit)
	require.NoError(t, err)
	got, err = uc.Update(ctx, fixed.ID, dto.UpdateDowntimeRequest{EndDateTime: &end})
	require.NoError(t, err)
	assert.True(t, got.Duration.Equal(one), got.Duration.String())
}

func TestUpdate_RevalidaRegistroCompleto(t *testing.T) {
	uc, h := setup(t)
	ctx := context.Background()
	d, err := uc.Create(ctx, request(h.LineID, day, 4))
	require.NoError(t, err)

	partial := string(entity.ImpactPartial)
	_, err = uc.Update(ctx, d.ID, dto.UpdateDowntimeRequest{ImpactType: &partial})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	got, err := uc.Update(ctx, d.ID, dto.UpdateDowntimeRequest{ImpactType: &partial, CapacityReductionPercent: pct(25)})
	require.NoError(t, err)
	assert.Equal(t, partial, got.ImpactType)
	assert.Equal(t, "Die change", got.Reason)
}

func TestList_ExcluyeCanceladas(t *testing.T) {
	uc, h := setup(t)
	ctx := context.Background()

	_, err := uc.Create(ctx, request(h.LineID, day, 2))
	require.NoError(t, err)
	c, err := uc.Create(ctx, request(h.LineID, day.Add(24*time.Hour), 2))
	require.NoError(t, err)
	_, err = uc.Cancel(ctx, c.ID, "planner")
	require.NoError(t, err)

	assert.Len(t, uc.List(ctx, dto.DowntimeListFilter{LineID: h.LineID}), 1)
	assert.Len(t, uc.List(ctx, dto.DowntimeListFilter{LineID: h.LineID, IncludeCancelled: true}), 2)
	assert.Len(t, uc.List(ctx, dto.DowntimeListFilter{Status: string(entity.DowntimeCancelled)}), 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Impacto
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeImpact_ParcialAprobado(t *testing.T) {
	uc, h := setup(t)
	ctx := context.Background()

	req := request(h.LineID, day.Add(8*time.Hour), 10)
	req.ImpactType = string(entity.ImpactPartial)
	req.CapacityReductionPercent = pct(50)
	d, err := uc.Create(ctx, req)
	require.NoError(t, err)
	_, err = uc.Approve(ctx, d.ID, "supervisor")
	require.NoError(t, err)

	hours, err := uc.ComputeImpact(ctx, h.LineID, day, day.Add(24*time.Hour))
	require.NoError(t, err)
	assert.True(t, hours.Equal(decimal.NewFromInt(5)), hours.String())
}

func TestComputeImpact_PendientesYCanceladasNoCuentan(t *testing.T) {
	uc, h := setup(t)
	ctx := context.Background()

	_, err := uc.Create(ctx, request(h.LineID, day.Add(2*time.Hour), 3))
	require.NoError(t, err)
	c, err := uc.Create(ctx, request(h.LineID, day.Add(6*time.Hour), 4))
	require.NoError(t, err)
	_, err = uc.Cancel(ctx, c.ID, "planner")
	require.NoError(t, err)

	hours, err := uc.ComputeImpact(ctx, h.LineID, day, day.Add(24*time.Hour))
	require.NoError(t, err)
	assert.True(t, hours.IsZero())

	forecast, err := uc.ForecastImpact(ctx, h.LineID, day, day.Add(24*time.Hour))
	require.NoError(t, err)
	assert.True(t, forecast.Equal(decimal.NewFromInt(3)), forecast.String())
}

func TestComputeImpact_SinRegistros(t *testing.T) {
	uc, h := setup(t)
	hours, err := uc.ComputeImpact(context.Background(), h.LineID, day, day.Add(time.Hour))
	require.NoError(t, err)
	assert.True(t, hours.IsZero())
}

func TestComputeImpact_VentanaInvertida(t *testing.T) {
	uc, h := setup(t)
	_, err := uc.ComputeImpact(context.Background(), h.LineID, day, day.Add(-time.Hour))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestForecastImpact_ExpandeRecurrencia(t *testing.T) {
	uc, h := setup(t)
	ctx := context.Background()

	req := request(h.LineID, day.Add(6*time.Hour), 1)
	req.Recurrence = string(entity.RecurrenceDaily)
	until := day.Add(30 * 24 * time.Hour)
	req.RecurrenceEndDate = &until
	_, err := uc.Create(ctx, req)
	require.NoError(t, err)

	// siete días de ventana: siete repeticiones de una hora
	forecast, err := uc.ForecastImpact(ctx, h.LineID, day, day.Add(7*24*time.Hour-time.Minute))
	require.NoError(t, err)
	assert.True(t, forecast.Equal(decimal.NewFromInt(7)), forecast.String())
}

func TestCapacity(t *testing.T) {
	uc, h := setup(t)
	ctx := context.Background()

	d, err := uc.Create(ctx, request(h.LineID, day.Add(8*time.Hour), 6))
	require.NoError(t, err)
	_, err = uc.Approve(ctx, d.ID, "supervisor")
	require.NoError(t, err)

	got, err := uc.Capacity(ctx, h.LineID, day, day.Add(24*time.Hour))
	require.NoError(t, err)
	assert.True(t, got.PlannedHours.Equal(decimal.NewFromInt(24)), got.PlannedHours.String())
	assert.True(t, got.LostHours.Equal(decimal.NewFromInt(6)))
	assert.True(t, got.AvailableHours.Equal(decimal.NewFromInt(18)))
	assert.True(t, got.LossPercent.Equal(decimal.NewFromInt(25)), got.LossPercent.String())
	assert.Equal(t, "L1", got.LineCode)

	_, err = uc.Capacity(ctx, "nope", day, day.Add(time.Hour))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fallos del almacén
// ──────────────────────────────────────────────────────────────────────────────

type failingRepo struct {
	repository.DowntimeRepository
	err error
}

func (f failingRepo) List(context.Context, repository.DowntimeFilter) ([]*entity.LineDowntime, error) {
	return nil, f.err
}

func (f failingRepo) ListForImpact(context.Context, string, []entity.DowntimeStatus, time.Time, time.Time) ([]*entity.LineDowntime, error) {
	return nil, f.err
}

func TestFallosDelAlmacen(t *testing.T) {
	s := testutil.NewStore(t)
	storeErr := &domain.StorageError{Op: "query", Err: errors.New("disk I/O error")}
	uc := downtime.NewUseCase(failingRepo{err: storeErr}, persistence.NewLineRepository(s), logger.Nop())
	ctx := context.Background()

	// listado: vacío, sin error
	list := uc.List(ctx, dto.DowntimeListFilter{})
	assert.NotNil(t, list)
	assert.Empty(t, list)

	// impacto: el error se propaga
	_, err := uc.ComputeImpact(ctx, "line", day, day.Add(time.Hour))
	assert.ErrorIs(t, err, domain.ErrStorage)
}
