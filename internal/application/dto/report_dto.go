package dto

import "time"

// CapacityReportLine capacidad de una línea con las paradas que la explican.
type CapacityReportLine struct {
	Capacity     CapacityResponse
	DivisionName string
	Downtimes    []DowntimeResponse
}

// CapacityReport informe de capacidad de todas las líneas activas en una ventana.
type CapacityReport struct {
	From        time.Time
	To          time.Time
	GeneratedAt time.Time
	Lines       []CapacityReportLine
}

// InventorySummaryReport totales por etapa y estado listos para exportar.
type InventorySummaryReport struct {
	GeneratedAt time.Time
	Rows        []StageSummaryResponse
}
