package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrReferential  = errors.New("referencia inexistente")
	ErrStorage      = errors.New("error de almacenamiento")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrConflict     = errors.New("conflicto con el estado actual")
)

// ValidationError campo obligatorio ausente o fuera de rango.
type ValidationError struct {
	Field  string
	Reason string
}

// NewValidationError construye un error de validación para un campo.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrInvalidInput.Error(), e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// ReferentialError una clave foránea (line_id, location_id, ...) no resuelve a ninguna fila.
type ReferentialError struct {
	Field string
	ID    string
}

func (e *ReferentialError) Error() string {
	return fmt.Sprintf("%s: %s=%q", ErrReferential.Error(), e.Field, e.ID)
}

func (e *ReferentialError) Unwrap() error { return ErrReferential }

// StorageError falla de lectura/escritura del almacén; los casos de uso la propagan sin modificar.
type StorageError struct {
	Op        string
	Err       error
	Duplicate bool // violación de unicidad (ej. code repetido)
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrStorage.Error(), e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Is permite errors.Is(err, ErrStorage) y errors.Is(err, ErrDuplicate) sin perder la causa original.
func (e *StorageError) Is(target error) bool {
	if target == ErrStorage {
		return true
	}
	return e.Duplicate && target == ErrDuplicate
}
