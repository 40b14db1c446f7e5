package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")
)

// FieldViolation describe un problema de validación en un campo puntual.
type FieldViolation struct {
	Field   string
	Message string
}

// ValidationError agrupa todas las violaciones de validación de una petición.
// Se reporta completo: el llamador recibe todos los campos problemáticos, no solo el primero.
type ValidationError struct {
	Violations []FieldViolation
}

// Error implementa error con un resumen campo: mensaje por cada violación.
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Field, v.Message))
	}
	return "validación fallida: " + strings.Join(parts, "; ")
}

// Fields devuelve los nombres de los campos con problemas.
func (e *ValidationError) Fields() []string {
	fields := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		fields = append(fields, v.Field)
	}
	return fields
}

// NewValidationError construye el error si hay violaciones; nil si la lista está vacía.
func NewValidationError(violations []FieldViolation) error {
	if len(violations) == 0 {
		return nil
	}
	return &ValidationError{Violations: violations}
}

// AsValidationError extrae un *ValidationError de una cadena de errores.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
