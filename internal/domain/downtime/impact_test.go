package downtime_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Planta-api/internal/domain/downtime"
	"github.com/jhoicas/Planta-api/internal/domain/entity"
)

var base = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

func record(status entity.DowntimeStatus, impact entity.ImpactType, hours int64, pct *int64) *entity.LineDowntime {
	d := &entity.LineDowntime{
		LineID:        "L1",
		StartDateTime: base.Add(8 * time.Hour),
		EndDateTime:   base.Add(time.Duration(8+hours) * time.Hour),
		Duration:      decimal.NewFromInt(hours),
		DurationUnit:  entity.UnitHours,
		Recurrence:    entity.RecurrenceNone,
		ImpactType:    impact,
		Status:        status,
	}
	if pct != nil {
		p := decimal.NewFromInt(*pct)
		d.CapacityReductionPercent = &p
	}
	return d
}

func i64(v int64) *int64 { return &v }

func TestWeightedHours(t *testing.T) {
	tests := []struct {
		name string
		d    *entity.LineDowntime
		want string
	}{
		{"full", record(entity.DowntimeApproved, entity.ImpactFull, 10, nil), "10"},
		{"partial 50%", record(entity.DowntimeApproved, entity.ImpactPartial, 10, i64(50)), "5"},
		{"partial sin porcentaje", record(entity.DowntimeApproved, entity.ImpactPartial, 10, nil), "0"},
		{"tipo desconocido", record(entity.DowntimeApproved, entity.ImpactType("other"), 10, nil), "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := downtime.WeightedHours(tt.d)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
		})
	}
}

func TestDurationHours_Unidades(t *testing.T) {
	d := record(entity.DowntimeApproved, entity.ImpactFull, 90, nil)
	d.DurationUnit = entity.UnitMinutes
	assert.True(t, d.DurationHours().Equal(decimal.RequireFromString("1.5")))

	d.DurationUnit = entity.UnitDays
	d.Duration = decimal.NewFromInt(2)
	assert.True(t, d.DurationHours().Equal(decimal.NewFromInt(48)))
}

func TestCommittedImpact_SoloAprobadasQueSeSolapan(t *testing.T) {
	approved := record(entity.DowntimeApproved, entity.ImpactFull, 4, nil)
	pending := record(entity.DowntimePending, entity.ImpactFull, 4, nil)
	cancelled := record(entity.DowntimeCancelled, entity.ImpactFull, 4, nil)
	otherLine := record(entity.DowntimeApproved, entity.ImpactFull, 4, nil)
	otherLine.LineID = "L2"

	records := []*entity.LineDowntime{approved, pending, cancelled, otherLine}
	got := downtime.CommittedImpact(records, "L1", base, base.Add(24*time.Hour))
	assert.True(t, got.Equal(decimal.NewFromInt(4)))

	// ventana sin solape
	got = downtime.CommittedImpact(records, "L1", base.Add(48*time.Hour), base.Add(72*time.Hour))
	assert.True(t, got.IsZero())

	assert.True(t, downtime.CommittedImpact(nil, "L1", base, base.Add(time.Hour)).IsZero())
}

func TestCommittedImpact_NoRecortaAlaVentana(t *testing.T) {
	d := record(entity.DowntimeApproved, entity.ImpactFull, 10, nil)
	// la ventana solo cubre 2 de las 10 horas; cuenta la duración completa
	got := downtime.CommittedImpact([]*entity.LineDowntime{d}, "L1", base.Add(16*time.Hour), base.Add(24*time.Hour))
	assert.True(t, got.Equal(decimal.NewFromInt(10)))
}

func TestOccurrences(t *testing.T) {
	d := record(entity.DowntimeApproved, entity.ImpactFull, 1, nil)
	d.Recurrence = entity.RecurrenceWeekly
	until := base.Add(21 * 24 * time.Hour)
	d.RecurrenceEndDate = &until

	// 1, 8 y 15 de marzo; la del 22 empieza después de recurrence_end_date
	got := downtime.Occurrences(d, base, base.Add(60*24*time.Hour))
	assert.Len(t, got, 3)
	assert.Equal(t, base.Add(8*time.Hour), got[0])

	// ventana que solo cubre la segunda semana
	got = downtime.Occurrences(d, base.Add(7*24*time.Hour), base.Add(8*24*time.Hour))
	assert.Len(t, got, 1)

	monthly := record(entity.DowntimeApproved, entity.ImpactFull, 1, nil)
	monthly.StartDateTime = time.Date(2024, 1, 31, 8, 0, 0, 0, time.UTC)
	monthly.EndDateTime = monthly.StartDateTime.Add(time.Hour)
	monthly.Recurrence = entity.RecurrenceMonthly
	end := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	monthly.RecurrenceEndDate = &end
	got = downtime.Occurrences(monthly, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), end)
	assert.Len(t, got, 11)
}

func TestOccurrences_SerieIniciadaHaceAnios(t *testing.T) {
	until := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	daily := record(entity.DowntimeApproved, entity.ImpactFull, 1, nil)
	daily.StartDateTime = time.Date(2008, 1, 1, 8, 0, 0, 0, time.UTC)
	daily.EndDateTime = daily.StartDateTime.Add(time.Hour)
	daily.Recurrence = entity.RecurrenceDaily
	daily.RecurrenceEndDate = &until

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	got := downtime.Occurrences(daily, from, from.Add(72*time.Hour))
	assert.Len(t, got, 3)
	if assert.NotEmpty(t, got) {
		assert.Equal(t, from.Add(8*time.Hour), got[0])
	}
	forecast := downtime.ForecastImpact([]*entity.LineDowntime{daily}, "L1", from, from.Add(72*time.Hour))
	assert.True(t, forecast.Equal(decimal.NewFromInt(3)), "got %s", forecast)

	weekly := record(entity.DowntimeApproved, entity.ImpactFull, 1, nil)
	weekly.StartDateTime = time.Date(2000, 1, 3, 8, 0, 0, 0, time.UTC)
	weekly.EndDateTime = weekly.StartDateTime.Add(time.Hour)
	weekly.Recurrence = entity.RecurrenceWeekly
	weekly.RecurrenceEndDate = &until
	assert.Len(t, downtime.Occurrences(weekly, from, from.Add(7*24*time.Hour-time.Minute)), 1)
}

func TestForecastImpact_CuentaPendientesYRepeticiones(t *testing.T) {
	pending := record(entity.DowntimePending, entity.ImpactPartial, 2, i64(50))
	pending.Recurrence = entity.RecurrenceDaily
	until := base.Add(10 * 24 * time.Hour)
	pending.RecurrenceEndDate = &until
	cancelled := record(entity.DowntimeCancelled, entity.ImpactFull, 5, nil)

	got := downtime.ForecastImpact([]*entity.LineDowntime{pending, cancelled}, "L1", base, base.Add(3*24*time.Hour))
	// tres repeticiones de 1h ponderada
	assert.True(t, got.Equal(decimal.NewFromInt(3)), "got %s", got)
}

func TestPlannedHours(t *testing.T) {
	assert.True(t, downtime.PlannedHours(decimal.NewFromInt(16), base, base.Add(48*time.Hour)).Equal(decimal.NewFromInt(32)))
	assert.True(t, downtime.PlannedHours(decimal.NewFromInt(24), base, base).IsZero())
}
