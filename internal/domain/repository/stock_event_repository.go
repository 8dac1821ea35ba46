package repository

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/cortes-stock/internal/domain/entity"
)

// StockEventRepository define el puerto de persistencia del libro de stock.
// Solo inserción y lectura: los eventos nunca se actualizan ni se borran.
type StockEventRepository interface {
	Create(event *entity.StockEvent) error
	// ListByStock devuelve los eventos de un registro, más recientes primero.
	ListByStock(stockID string, limit, offset int) ([]*entity.StockEvent, error)
	// SumByStock devuelve la suma de los cambios del libro para un registro
	// (cero si no hay eventos). Base de la conciliación libro vs. cantidad.
	SumByStock(stockID string) (decimal.Decimal, error)
}
