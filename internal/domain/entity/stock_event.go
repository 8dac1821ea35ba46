package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de evento del libro de stock.
const (
	EventInitialReceipt      = "initial_receipt"       // alta inicial con cantidad > 0
	EventManualAdjustmentIn  = "manual_adjustment_in"  // ajuste manual positivo
	EventManualAdjustmentOut = "manual_adjustment_out" // ajuste manual negativo
	EventCutDispatch         = "cut_dispatch"          // despacho por orden de corte
)

// StockEvent es una entrada inmutable del libro de stock: registra un cambio de
// cantidad y su causa. Nunca se actualiza ni se borra; la suma de los cambios de
// un registro explica por completo su cantidad actual.
type StockEvent struct {
	ID             string
	StockID        string // referencia al StockRecord afectado
	QuantityChange decimal.Decimal // con signo, nunca cero
	Type           string
	Actor          string // UserID que causó el cambio
	Note           string // texto libre: motivo, id de orden, etc.
	CreatedAt      time.Time
}
