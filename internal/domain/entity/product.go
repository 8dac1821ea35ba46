package entity

import "time"

// Product representa un producto del catálogo. Si HasSubproducts es true el
// stock se lleva por subproducto; si no, el producto mismo es dueño de stock.
type Product struct {
	ID             string
	SKU            string // código único
	Name           string
	Description    string
	UnitMeasure    string
	HasSubproducts bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
