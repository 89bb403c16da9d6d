package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas). El adaptador de storage
// traduce los códigos del motor a estos valores; nadie fuera de él inspecciona
// códigos SQLSTATE ni strings del driver.
var (
	ErrDuplicate    = errors.New("registro duplicado")
	ErrForeignKey   = errors.New("referencia a registro inexistente")
	ErrCheckFailed  = errors.New("restricción de datos violada")
	ErrUnavailable  = errors.New("storage no disponible") // transitorio: pool agotado o conexión caída
	ErrInvalidToken = errors.New("token inválido")
)

// StorageError envuelve una falla del motor que no cae en ninguna categoría
// conocida. El mensaje crudo solo se expone en modo development.
type StorageError struct {
	Op  string // operación que falló: "insert product", "list products", ...
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// NewStorageError construye el wrapper para una falla no clasificada.
func NewStorageError(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}

// ValidationError falla de una regla de negocio sobre la entrada, con detalle
// por campo para que el cliente sepa qué corregir.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validación fallida: %d campo(s)", len(e.Fields))
}

// NewValidationError construye el error con los campos inválidos.
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}
