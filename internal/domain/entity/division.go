package entity

import "time"

// Division unidad productiva dentro de una Location (ej. Forging).
type Division struct {
	ID         string
	LocationID string
	Code       string
	Name       string
	State      ActivityState
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Solo lectura: resueltos por join al listar, nunca se persisten en divisions.
	LocationName string
	LocationCode string
}
