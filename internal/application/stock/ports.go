package stock

import (
	"context"

	"github.com/tu-usuario/cortes-stock/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad: el registro de stock y su
// evento del libro se escriben juntos o no se escribe ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		stockRepo repository.StockRecordRepository,
		eventRepo repository.StockEventRepository,
	) error) error
}
