package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de dueño de un registro de stock.
const (
	OwnerProduct    = "product"    // producto sin variantes
	OwnerSubproduct = "subproduct" // subproducto (variante cortable)
)

// Estados de ciclo de vida del registro de stock.
const (
	StockStatusActive  = "active"
	StockStatusDeleted = "deleted" // borrado lógico: la cantidad queda congelada
)

// OwnerRef identifica al dueño de un registro de stock: exactamente un producto
// o un subproducto. La unión etiquetada hace imposible un registro con ambos.
type OwnerRef struct {
	Kind string // OwnerProduct | OwnerSubproduct
	ID   string
}

// Valid verifica que la referencia tenga kind conocido e ID no vacío.
func (o OwnerRef) Valid() bool {
	return (o.Kind == OwnerProduct || o.Kind == OwnerSubproduct) && o.ID != ""
}

// StockRecord mantiene la cantidad actual de un dueño en una ubicación.
// Invariante: Quantity nunca es negativa; se muta solo vía el servicio de stock.
type StockRecord struct {
	ID         string
	Owner      OwnerRef
	Quantity   decimal.Decimal
	Location   string // etiqueta opcional (estante, bodega, etc.)
	Status     string // active | deleted
	CreatedBy  string
	CreatedAt  time.Time
	ModifiedBy string
	ModifiedAt time.Time
	DeletedBy  string
	DeletedAt  *time.Time
}

// IsActive indica si el registro admite mutaciones.
func (s *StockRecord) IsActive() bool {
	return s.Status == StockStatusActive
}
