package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/cortes-stock/internal/domain/entity"
)

// Sum reproduce el libro (servicio de dominio): la suma de los cambios de todos
// los eventos de un registro. Para un registro íntegro, Sum == cantidad actual.
func Sum(events []*entity.StockEvent) decimal.Decimal {
	total := decimal.Zero
	for _, e := range events {
		total = total.Add(e.QuantityChange)
	}
	return total
}

// Report es el resultado de conciliar un registro contra su libro.
type Report struct {
	StockID    string
	Quantity   decimal.Decimal // cantidad materializada en el registro
	LedgerSum  decimal.Decimal // suma de los eventos
	Drift      decimal.Decimal // Quantity - LedgerSum; cero si el libro cuadra
	Consistent bool
}

// Reconcile compara la cantidad materializada con la suma del libro. Un drift
// distinto de cero indica corrupción (escritura fuera de las operaciones del
// núcleo) y amerita revisión manual.
func Reconcile(record *entity.StockRecord, sum decimal.Decimal) Report {
	drift := record.Quantity.Sub(sum)
	return Report{
		StockID:    record.ID,
		Quantity:   record.Quantity,
		LedgerSum:  sum,
		Drift:      drift,
		Consistent: drift.IsZero(),
	}
}
