package entity

// Category representa una categoría de productos. Los productos la referencian
// por ID (referencia débil); borrar una categoría referenciada es una violación
// de integridad que el storage rechaza, nunca un cascade.
type Category struct {
	ID   int64
	Name string
}
