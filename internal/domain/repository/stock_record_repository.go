package repository

import "github.com/tu-usuario/cortes-stock/internal/domain/entity"

// StockRecordRepository define el puerto de persistencia para registros de stock.
// Los métodos Get* devuelven (nil, nil) si el registro no existe.
type StockRecordRepository interface {
	Create(record *entity.StockRecord) error
	GetByID(id string) (*entity.StockRecord, error)
	// GetActiveByOwner devuelve el registro activo del dueño en la ubicación dada.
	GetActiveByOwner(owner entity.OwnerRef, location string) (*entity.StockRecord, error)
	// ResolveForOwner devuelve el registro activo más antiguo del dueño, en
	// cualquier ubicación. Usado para resolver el stock a despachar en cortes.
	ResolveForOwner(owner entity.OwnerRef) (*entity.StockRecord, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE) y la devuelve.
	// El lock se mantiene hasta el fin de la transacción.
	GetForUpdate(id string) (*entity.StockRecord, error)
	// UpdateQuantity persiste cantidad y campos de modificación.
	UpdateQuantity(record *entity.StockRecord) error
	// SoftDelete marca el registro como eliminado; la cantidad queda como está.
	SoftDelete(record *entity.StockRecord) error
	List(limit, offset int) ([]*entity.StockRecord, error)
}
