package dto

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CreateLocationRequest alta de planta.
type CreateLocationRequest struct {
	Code     string  `json:"code" validate:"required,max=50"`
	Name     string  `json:"name" validate:"required,max=200"`
	Address  *string `json:"address"`
	IsActive *bool   `json:"is_active"`
}

// Normalize recorta espacios.
func (r *CreateLocationRequest) Normalize() {
	r.Code = strings.TrimSpace(r.Code)
	r.Name = strings.TrimSpace(r.Name)
	trimPtr(r.Address)
}

// UpdateLocationRequest cambios parciales; los campos nil no se tocan.
type UpdateLocationRequest struct {
	Code     *string `json:"code" validate:"omitempty,min=1,max=50"`
	Name     *string `json:"name" validate:"omitempty,min=1,max=200"`
	Address  *string `json:"address"`
	IsActive *bool   `json:"is_active"`
}

// Normalize recorta espacios.
func (r *UpdateLocationRequest) Normalize() {
	trimPtr(r.Code)
	trimPtr(r.Name)
	trimPtr(r.Address)
}

// Empty indica que no se envió ningún campo.
func (r UpdateLocationRequest) Empty() bool {
	return r.Code == nil && r.Name == nil && r.Address == nil && r.IsActive == nil
}

// LocationResponse salida de una planta.
type LocationResponse struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Address   *string   `json:"address,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateDivisionRequest alta de división dentro de una planta.
type CreateDivisionRequest struct {
	LocationID string `json:"location_id" validate:"required"`
	Code       string `json:"code" validate:"required,max=50"`
	Name       string `json:"name" validate:"required,max=200"`
	IsActive   *bool  `json:"is_active"`
}

// Normalize recorta espacios.
func (r *CreateDivisionRequest) Normalize() {
	r.LocationID = strings.TrimSpace(r.LocationID)
	r.Code = strings.TrimSpace(r.Code)
	r.Name = strings.TrimSpace(r.Name)
}

// UpdateDivisionRequest cambios parciales.
type UpdateDivisionRequest struct {
	LocationID *string `json:"location_id" validate:"omitempty,min=1"`
	Code       *string `json:"code" validate:"omitempty,min=1,max=50"`
	Name       *string `json:"name" validate:"omitempty,min=1,max=200"`
	IsActive   *bool   `json:"is_active"`
}

// Normalize recorta espacios.
func (r *UpdateDivisionRequest) Normalize() {
	trimPtr(r.LocationID)
	trimPtr(r.Code)
	trimPtr(r.Name)
}

// Empty indica que no se envió ningún campo.
func (r UpdateDivisionRequest) Empty() bool {
	return r.LocationID == nil && r.Code == nil && r.Name == nil && r.IsActive == nil
}

// DivisionResponse salida de una división con los datos de su planta.
type DivisionResponse struct {
	ID           string    `json:"id"`
	LocationID   string    `json:"location_id"`
	Code         string    `json:"code"`
	Name         string    `json:"name"`
	IsActive     bool      `json:"is_active"`
	LocationName string    `json:"location_name,omitempty"`
	LocationCode string    `json:"location_code,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateLineRequest alta de línea dentro de una división.
type CreateLineRequest struct {
	DivisionID  string           `json:"division_id" validate:"required"`
	Code        string           `json:"code" validate:"required,max=50"`
	Name        string           `json:"name" validate:"required,max=200"`
	Description *string          `json:"description"`
	HoursPerDay *decimal.Decimal `json:"hours_per_day"`
	IsActive    *bool            `json:"is_active"`
}

// Normalize recorta espacios.
func (r *CreateLineRequest) Normalize() {
	r.DivisionID = strings.TrimSpace(r.DivisionID)
	r.Code = strings.TrimSpace(r.Code)
	r.Name = strings.TrimSpace(r.Name)
	trimPtr(r.Description)
}

// UpdateLineRequest cambios parciales.
type UpdateLineRequest struct {
	DivisionID  *string          `json:"division_id" validate:"omitempty,min=1"`
	Code        *string          `json:"code" validate:"omitempty,min=1,max=50"`
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description"`
	HoursPerDay *decimal.Decimal `json:"hours_per_day"`
	IsActive    *bool            `json:"is_active"`
}

// Normalize recorta espacios.
func (r *UpdateLineRequest) Normalize() {
	trimPtr(r.DivisionID)
	trimPtr(r.Code)
	trimPtr(r.Name)
	trimPtr(r.Description)
}

// Empty indica que no se envió ningún campo.
func (r UpdateLineRequest) Empty() bool {
	return r.DivisionID == nil && r.Code == nil && r.Name == nil && r.Description == nil &&
		r.HoursPerDay == nil && r.IsActive == nil
}

// LineResponse salida de una línea con los datos de su división.
type LineResponse struct {
	ID           string          `json:"id"`
	DivisionID   string          `json:"division_id"`
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	Description  *string         `json:"description,omitempty"`
	HoursPerDay  decimal.Decimal `json:"hours_per_day"`
	IsActive     bool            `json:"is_active"`
	DivisionName string          `json:"division_name,omitempty"`
	DivisionCode string          `json:"division_code,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
