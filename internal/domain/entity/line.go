package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultHoursPerDay horas planificadas de operación cuando no se indican.
var DefaultHoursPerDay = decimal.NewFromInt(24)

// Line línea de producción de una Division. Es la referencia de paradas e inventario.
type Line struct {
	ID          string
	DivisionID  string
	Code        string
	Name        string
	Description *string
	HoursPerDay decimal.Decimal
	State       ActivityState
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Solo lectura (join).
	DivisionName string
	DivisionCode string
}
