// Package metrics contadores Prometheus del motor de paradas e inventario.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics colectores registrados en el registro por defecto.
type Metrics struct {
	DowntimeTransitions *prometheus.CounterVec
	ImpactDuration      *prometheus.HistogramVec
	StockAdjustments    *prometheus.CounterVec
	StockAdjustedUnits  *prometheus.CounterVec
	DegradedReads       *prometheus.CounterVec
	DirectoryMutations  *prometheus.CounterVec
}

var singleton = sync.OnceValue(func() *Metrics {
	return &Metrics{
		DowntimeTransitions: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "planta",
			Name:      "downtime_transitions_total",
			Help:      "Transiciones de estado de paradas de línea.",
		}, []string{"to"}),
		ImpactDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "planta",
			Name:      "impact_compute_seconds",
			Help:      "Latencia del cálculo de impacto de paradas.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}, []string{"kind"}),
		StockAdjustments: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "planta",
			Name:      "stock_adjustments_total",
			Help:      "Ajustes de existencias por resultado.",
		}, []string{"result"}),
		StockAdjustedUnits: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "planta",
			Name:      "stock_adjusted_units_total",
			Help:      "Unidades ajustadas por dirección (in/out).",
		}, []string{"direction"}),
		DegradedReads: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "planta",
			Name:      "degraded_reads_total",
			Help:      "Listados que devolvieron vacío por fallo del almacén.",
		}, []string{"operation"}),
		DirectoryMutations: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "planta",
			Name:      "directory_mutations_total",
			Help:      "Altas, cambios y bajas lógicas en el directorio de plantas.",
		}, []string{"kind", "op"}),
	}
})

// Default colectores del proceso (registrados una sola vez).
func Default() *Metrics {
	return singleton()
}
