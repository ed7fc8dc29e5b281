package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DowntimeStatus estado de aprobación de una parada de línea.
type DowntimeStatus string

const (
	DowntimePending   DowntimeStatus = "pending"
	DowntimeApproved  DowntimeStatus = "approved"
	DowntimeCancelled DowntimeStatus = "cancelled"
)

var _ LifecycleState = DowntimePending

func (s DowntimeStatus) String() string { return string(s) }

func (s DowntimeStatus) Valid() bool {
	switch s {
	case DowntimePending, DowntimeApproved, DowntimeCancelled:
		return true
	}
	return false
}

// Terminal approved y cancelled no admiten más transiciones.
func (s DowntimeStatus) Terminal() bool {
	return s == DowntimeApproved || s == DowntimeCancelled
}

// CanTransitionTo pending -> approved | cancelled.
func (s DowntimeStatus) CanTransitionTo(next DowntimeStatus) bool {
	return s == DowntimePending && (next == DowntimeApproved || next == DowntimeCancelled)
}

// ImpactType alcance de la parada sobre la capacidad de la línea.
type ImpactType string

const (
	ImpactFull    ImpactType = "full"
	ImpactPartial ImpactType = "partial"
)

// DurationUnit unidad en la que se expresa Duration.
type DurationUnit string

const (
	UnitHours   DurationUnit = "hours"
	UnitMinutes DurationUnit = "minutes"
	UnitDays    DurationUnit = "days"
)

// Recurrence repetición de la ventana de parada.
type Recurrence string

const (
	RecurrenceNone    Recurrence = "none"
	RecurrenceDaily   Recurrence = "daily"
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
)

// Categorías habituales de parada (el campo es libre; estas son las que usa la consola).
const (
	CategoryPlannedMaintenance = "planned_maintenance"
	CategoryBreakdown          = "breakdown"
	CategoryChangeover         = "changeover"
	CategoryMaterialShortage   = "material_shortage"
)

// LineDowntime ventana de parada programada o aprobada sobre una línea.
type LineDowntime struct {
	ID                       string
	LineID                   string
	Reason                   string
	Category                 string
	StartDateTime            time.Time
	EndDateTime              time.Time
	Duration                 decimal.Decimal
	DurationUnit             DurationUnit
	Recurrence               Recurrence
	RecurrenceEndDate        *time.Time
	ImpactType               ImpactType
	CapacityReductionPercent *decimal.Decimal // solo significativo si ImpactType = partial
	Notes                    *string
	CreatedBy                string
	ApprovedBy               *string
	Status                   DowntimeStatus
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

var (
	minutesPerHour = decimal.NewFromInt(60)
	hoursPerDay    = decimal.NewFromInt(24)
)

// DurationHours duración normalizada a horas según DurationUnit (vacío = horas).
func (d *LineDowntime) DurationHours() decimal.Decimal {
	switch d.DurationUnit {
	case UnitMinutes:
		return d.Duration.Div(minutesPerHour)
	case UnitDays:
		return d.Duration.Mul(hoursPerDay)
	default:
		return d.Duration
	}
}

// Intersects indica si la ventana de la parada se solapa con [from, to].
func (d *LineDowntime) Intersects(from, to time.Time) bool {
	return !d.StartDateTime.After(to) && !d.EndDateTime.Before(from)
}
