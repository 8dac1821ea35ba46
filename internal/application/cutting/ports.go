package cutting

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cortes-stock/internal/domain/entity"
	"github.com/tu-usuario/cortes-stock/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con los
// repositorios que necesita el workflow de órdenes de corte. La finalización
// despacha stock y cambia el estado de la orden en la misma transacción.
type TxRunner interface {
	RunCutting(ctx context.Context, fn func(
		orderRepo repository.CuttingOrderRepository,
		stockRepo repository.StockRecordRepository,
		eventRepo repository.StockEventRepository,
	) error) error
}

// StockDispatcher es el contrato mínimo hacia el servicio de stock para
// despachar un corte dentro de la transacción del caller. Lo implementa
// *stock.Service; la interfaz evita el acople directo entre paquetes.
type StockDispatcher interface {
	DispatchForCutInTx(
		stockRepo repository.StockRecordRepository,
		eventRepo repository.StockEventRepository,
		stockID string,
		quantity decimal.Decimal,
		orderID, actor string,
	) (*entity.StockRecord, error)
}
