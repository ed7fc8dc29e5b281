package dto

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CreateDowntimeRequest alta de una parada; queda en estado pending.
// Duration vacío se deriva de la ventana (en horas).
type CreateDowntimeRequest struct {
	LineID                   string           `json:"line_id" validate:"required"`
	Reason                   string           `json:"reason" validate:"required,max=500"`
	Category                 string           `json:"category" validate:"required,max=100"`
	StartDateTime            time.Time        `json:"start_date_time" validate:"required"`
	EndDateTime              time.Time        `json:"end_date_time" validate:"required"`
	Duration                 *decimal.Decimal `json:"duration"`
	DurationUnit             string           `json:"duration_unit" validate:"omitempty,oneof=hours minutes days"`
	Recurrence               string           `json:"recurrence" validate:"omitempty,oneof=none daily weekly monthly"`
	RecurrenceEndDate        *time.Time       `json:"recurrence_end_date"`
	ImpactType               string           `json:"impact_type" validate:"required,oneof=full partial"`
	CapacityReductionPercent *decimal.Decimal `json:"capacity_reduction_percent"`
	Notes                    *string          `json:"notes"`
	CreatedBy                string           `json:"-"`
}

// Normalize recorta espacios.
func (r *CreateDowntimeRequest) Normalize() {
	r.LineID = strings.TrimSpace(r.LineID)
	r.Reason = strings.TrimSpace(r.Reason)
	r.Category = strings.TrimSpace(r.Category)
	trimPtr(r.Notes)
}

// UpdateDowntimeRequest cambios parciales; el estado no se cambia aquí (ver approve/cancel).
type UpdateDowntimeRequest struct {
	LineID                   *string          `json:"line_id" validate:"omitempty,min=1"`
	Reason                   *string          `json:"reason" validate:"omitempty,min=1,max=500"`
	Category                 *string          `json:"category" validate:"omitempty,min=1,max=100"`
	StartDateTime            *time.Time       `json:"start_date_time"`
	EndDateTime              *time.Time       `json:"end_date_time"`
	Duration                 *decimal.Decimal `json:"duration"`
	DurationUnit             *string          `json:"duration_unit" validate:"omitempty,oneof=hours minutes days"`
	Recurrence               *string          `json:"recurrence" validate:"omitempty,oneof=none daily weekly monthly"`
	RecurrenceEndDate        *time.Time       `json:"recurrence_end_date"`
	ImpactType               *string          `json:"impact_type" validate:"omitempty,oneof=full partial"`
	CapacityReductionPercent *decimal.Decimal `json:"capacity_reduction_percent"`
	Notes                    *string          `json:"notes"`
}

// Normalize recorta espacios.
func (r *UpdateDowntimeRequest) Normalize() {
	trimPtr(r.LineID)
	trimPtr(r.Reason)
	trimPtr(r.Category)
	trimPtr(r.Notes)
}

// Empty indica que no se envió ningún campo.
func (r UpdateDowntimeRequest) Empty() bool {
	return r.LineID == nil && r.Reason == nil && r.Category == nil && r.StartDateTime == nil &&
		r.EndDateTime == nil && r.Duration == nil && r.DurationUnit == nil && r.Recurrence == nil &&
		r.RecurrenceEndDate == nil && r.ImpactType == nil && r.CapacityReductionPercent == nil && r.Notes == nil
}

// DowntimeListFilter parámetros de GET /api/downtimes.
type DowntimeListFilter struct {
	LineID           string     `query:"line_id"`
	From             *time.Time `query:"from"`
	To               *time.Time `query:"to"`
	Status           string     `query:"status" validate:"omitempty,oneof=pending approved cancelled"`
	IncludeCancelled bool       `query:"include_cancelled"`
	Limit            int        `query:"limit" validate:"min=0,max=500"`
	Offset           int        `query:"offset" validate:"min=0"`
}

// DowntimeResponse salida de una parada.
type DowntimeResponse struct {
	ID                       string           `json:"id"`
	LineID                   string           `json:"line_id"`
	Reason                   string           `json:"reason"`
	Category                 string           `json:"category"`
	StartDateTime            time.Time        `json:"start_date_time"`
	EndDateTime              time.Time        `json:"end_date_time"`
	Duration                 decimal.Decimal  `json:"duration"`
	DurationUnit             string           `json:"duration_unit"`
	DurationHours            decimal.Decimal  `json:"duration_hours"`
	Recurrence               string           `json:"recurrence"`
	RecurrenceEndDate        *time.Time       `json:"recurrence_end_date,omitempty"`
	ImpactType               string           `json:"impact_type"`
	CapacityReductionPercent *decimal.Decimal `json:"capacity_reduction_percent,omitempty"`
	Notes                    *string          `json:"notes,omitempty"`
	CreatedBy                string           `json:"created_by"`
	ApprovedBy               *string          `json:"approved_by,omitempty"`
	Status                   string           `json:"status"`
	CreatedAt                time.Time        `json:"created_at"`
	UpdatedAt                time.Time        `json:"updated_at"`
}

// ImpactResponse horas de capacidad perdidas en la ventana.
type ImpactResponse struct {
	LineID        string          `json:"line_id"`
	From          time.Time       `json:"from"`
	To            time.Time       `json:"to"`
	Hours         decimal.Decimal `json:"hours"`
	ForecastHours decimal.Decimal `json:"forecast_hours"`
}

// CapacityResponse capacidad planificada frente a la perdida por paradas.
type CapacityResponse struct {
	LineID         string          `json:"line_id"`
	LineCode       string          `json:"line_code"`
	LineName       string          `json:"line_name"`
	From           time.Time       `json:"from"`
	To             time.Time       `json:"to"`
	PlannedHours   decimal.Decimal `json:"planned_hours"`
	LostHours      decimal.Decimal `json:"lost_hours"`
	ForecastHours  decimal.Decimal `json:"forecast_hours"`
	AvailableHours decimal.Decimal `json:"available_hours"`
	LossPercent    decimal.Decimal `json:"loss_percent"`
}
