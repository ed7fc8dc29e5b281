package entity

import "time"

// Location planta o sede física (ej. Mundhawa). El code es único.
type Location struct {
	ID        string
	Code      string
	Name      string
	Address   *string
	State     ActivityState
	CreatedAt time.Time
	UpdatedAt time.Time
}
