package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. El ID lo asigna el storage al
// crear y es inmutable. CategoryID es una referencia débil: puede ser nil y el
// nombre de la categoría se resuelve con un JOIN al leer, nunca se persiste.
type Product struct {
	ID            int64
	Name          string
	Description   string
	Price         decimal.Decimal
	StockQuantity int
	CategoryID    *int64
	CategoryName  *string // solo lectura, resuelto por JOIN; nil si no tiene categoría
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Field distingue tres estados de un campo en una actualización parcial:
// ausente (Set=false: no tocar), null explícito (Set=true, Null=true: escribir
// NULL) y valor presente. Un null explícito nunca se ignora.
type Field[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// UnmarshalJSON marca el campo como presente; "null" queda como Null explícito.
func (f *Field[T]) UnmarshalJSON(b []byte) error {
	f.Set = true
	if string(b) == "null" {
		f.Null = true
		return nil
	}
	return json.Unmarshal(b, &f.Value)
}

// MarshalJSON emite null para un NULL explícito y el valor en otro caso.
// Combinado con el tag omitzero, un campo ausente no se serializa.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if f.Null {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// IsZero reporta campo ausente (para omitzero de encoding/json).
func (f Field[T]) IsZero() bool { return !f.Set }

// Arg devuelve el valor a enviar al storage: nil para NULL explícito.
func (f Field[T]) Arg() any {
	if f.Null {
		return nil
	}
	return f.Value
}

// ProductPatch campos de una actualización parcial. Solo los campos con
// Set=true entran en el UPDATE; los demás quedan intactos.
type ProductPatch struct {
	Name          Field[string]
	Description   Field[string]
	Price         Field[decimal.Decimal]
	StockQuantity Field[int]
	CategoryID    Field[int64]
}

// IsEmpty indica si el patch no trae ningún campo (señal de no-op, no error).
func (p ProductPatch) IsEmpty() bool {
	return !p.Name.Set && !p.Description.Set && !p.Price.Set &&
		!p.StockQuantity.Set && !p.CategoryID.Set
}
