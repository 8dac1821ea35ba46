package repository

import "github.com/tu-usuario/cortes-stock/internal/domain/entity"

// ProductRepository es el puerto mínimo hacia el catálogo de productos.
// El CRUD completo del catálogo vive fuera de este núcleo.
type ProductRepository interface {
	GetByID(id string) (*entity.Product, error)
}
