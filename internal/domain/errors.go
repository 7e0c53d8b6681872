package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrUnauthorized    = errors.New("no autorizado")
	ErrArchiveDisabled = errors.New("archivo de reportes deshabilitado")

	// Errores del pipeline de stock opname.
	ErrInvalidDataset    = errors.New("el archivo debe contener un arreglo JSON de registros")
	ErrMalformedCurrency = errors.New("nominal con formato inválido")
	ErrMalformedQuantity = errors.New("selisih con formato inválido")
	ErrMissingField      = errors.New("campo esperado ausente")
)

// RecordError identifica el registro y la columna que no pudo procesarse.
// Index es la posición (base 0) del registro dentro del archivo subido.
type RecordError struct {
	Index int
	Field string
	Err   error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("registro %d, campo %q: %v", e.Index, e.Field, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }
