package entity

import "time"

// Subproduct es una variante cortable de un producto (catálogo). El núcleo de
// stock solo la referencia por ID; su CRUD vive en el colaborador de catálogo.
type Subproduct struct {
	ID        string
	ProductID string
	SKU       string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
