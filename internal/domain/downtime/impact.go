// Package downtime contiene el cálculo puro de horas de capacidad perdidas por paradas de línea.
//
//	full    -> duración completa
//	partial -> duración × (capacity_reduction_percent / 100)
//	otro    -> 0
package downtime

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Planta-api/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// maxOccurrences cota de expansión de recurrencias por registro.
const maxOccurrences = 5000

// WeightedHours horas de capacidad que una parada resta a su línea (una ocurrencia).
func WeightedHours(d *entity.LineDowntime) decimal.Decimal {
	switch d.ImpactType {
	case entity.ImpactFull:
		return d.DurationHours()
	case entity.ImpactPartial:
		if d.CapacityReductionPercent == nil {
			return decimal.Zero
		}
		return d.DurationHours().Mul(*d.CapacityReductionPercent).Div(hundred)
	default:
		return decimal.Zero
	}
}

// CommittedImpact suma WeightedHours de las paradas aprobadas de lineID cuya ventana se solapa con [from, to].
// Pendientes y canceladas no cuentan: no son pérdida de capacidad comprometida.
func CommittedImpact(records []*entity.LineDowntime, lineID string, from, to time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, d := range records {
		if d.LineID != lineID || d.Status != entity.DowntimeApproved || !d.Intersects(from, to) {
			continue
		}
		total = total.Add(WeightedHours(d))
	}
	return total
}

// ForecastImpact como CommittedImpact pero incluye pendientes y expande las recurrencias dentro de la ventana.
func ForecastImpact(records []*entity.LineDowntime, lineID string, from, to time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, d := range records {
		if d.LineID != lineID || d.Status == entity.DowntimeCancelled {
			continue
		}
		n := len(Occurrences(d, from, to))
		if n == 0 {
			continue
		}
		total = total.Add(WeightedHours(d).Mul(decimal.NewFromInt(int64(n))))
	}
	return total
}

// Occurrences inicios de cada repetición de la parada cuya ventana se solapa con [from, to].
// La última repetición es la que empieza en o antes de RecurrenceEndDate.
func Occurrences(d *entity.LineDowntime, from, to time.Time) []time.Time {
	if d.Recurrence == "" || d.Recurrence == entity.RecurrenceNone || d.RecurrenceEndDate == nil {
		if d.Intersects(from, to) {
			return []time.Time{d.StartDateTime}
		}
		return nil
	}

	span := d.EndDateTime.Sub(d.StartDateTime)
	limit := *d.RecurrenceEndDate
	if to.Before(limit) {
		limit = to
	}

	var out []time.Time
	first := firstIndex(d.StartDateTime, d.Recurrence, from.Add(-span))
	for k := first; k < first+maxOccurrences; k++ {
		start := shift(d.StartDateTime, d.Recurrence, k)
		if start.After(limit) {
			break
		}
		end := start.Add(span)
		if !start.After(to) && !end.Before(from) {
			out = append(out, start)
		}
	}
	return out
}

// firstIndex índice de una repetición que empieza en o antes de at, cercana a at.
// Se retrocede dos pasos para cubrir cambios de horario y meses cortos.
func firstIndex(base time.Time, r entity.Recurrence, at time.Time) int {
	if !at.After(base) {
		return 0
	}
	var k int
	switch r {
	case entity.RecurrenceDaily:
		k = int(at.Sub(base) / (24 * time.Hour))
	case entity.RecurrenceWeekly:
		k = int(at.Sub(base) / (7 * 24 * time.Hour))
	case entity.RecurrenceMonthly:
		k = (at.Year()-base.Year())*12 + int(at.Month()) - int(base.Month())
	}
	return max(k-2, 0)
}

// shift desplaza desde el inicio original para evitar deriva acumulada en meses cortos.
func shift(base time.Time, r entity.Recurrence, k int) time.Time {
	switch r {
	case entity.RecurrenceDaily:
		return base.AddDate(0, 0, k)
	case entity.RecurrenceWeekly:
		return base.AddDate(0, 0, 7*k)
	case entity.RecurrenceMonthly:
		return base.AddDate(0, k, 0)
	default:
		return base
	}
}

// PlannedHours horas planificadas de una línea en [from, to] según sus horas diarias.
func PlannedHours(hoursPerDay decimal.Decimal, from, to time.Time) decimal.Decimal {
	if !to.After(from) {
		return decimal.Zero
	}
	days := decimal.NewFromFloat(to.Sub(from).Hours()).Div(decimal.NewFromInt(24))
	return hoursPerDay.Mul(days).Round(2)
}
