package repository

import "github.com/tu-usuario/cortes-stock/internal/domain/entity"

// CuttingOrderRepository define el puerto de persistencia para órdenes de corte.
// Los items son composición: se crean con la orden y se leen junto a ella.
type CuttingOrderRepository interface {
	// Create persiste la orden y todos sus items (misma transacción del Querier).
	Create(order *entity.CuttingOrder) error
	// GetByID devuelve la orden con sus items, o (nil, nil) si no existe.
	GetByID(id string) (*entity.CuttingOrder, error)
	// GetForUpdate bloquea la fila de la orden (SELECT FOR UPDATE) y la
	// devuelve con sus items. El lock se mantiene hasta el fin de la tx.
	GetForUpdate(id string) (*entity.CuttingOrder, error)
	// UpdateStatus persiste status, updated_at y completed_at.
	UpdateStatus(order *entity.CuttingOrder) error
	// UpdateAssignment persiste assigned_to, assigned_by y updated_at.
	UpdateAssignment(order *entity.CuttingOrder) error
	ListByStatus(status string, limit, offset int) ([]*entity.CuttingOrder, error)
}
