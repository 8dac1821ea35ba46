package repository

import "github.com/tu-usuario/cortes-stock/internal/domain/entity"

// SubproductRepository es el puerto mínimo hacia el catálogo de subproductos.
type SubproductRepository interface {
	GetByID(id string) (*entity.Subproduct, error)
}
