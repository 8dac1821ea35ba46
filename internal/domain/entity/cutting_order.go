package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de corte. Las transiciones solo avanzan:
// pending -> in_process -> completed; cancelación desde pending o in_process.
const (
	OrderStatusPending   = "pending"
	OrderStatusInProcess = "in_process"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// CuttingOrder representa una solicitud de cliente para cortar uno o más
// subproductos del stock. Es dueña exclusiva de sus items (composición).
type CuttingOrder struct {
	ID          string
	Customer    string
	Status      string
	AssignedBy  string // UserID que asignó
	AssignedTo  string // UserID del operario asignado (opcional)
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CompletedAt *time.Time
	Items       []CuttingOrderItem
}

// CuttingOrderItem es una línea de la orden: subproducto y cantidad a cortar (> 0).
type CuttingOrderItem struct {
	ID           string
	OrderID      string
	SubproductID string
	Quantity     decimal.Decimal
}

// CanTransition valida la máquina de estados de la orden.
func (o *CuttingOrder) CanTransition(to string) bool {
	switch o.Status {
	case OrderStatusPending:
		return to == OrderStatusInProcess || to == OrderStatusCancelled
	case OrderStatusInProcess:
		return to == OrderStatusCompleted || to == OrderStatusCancelled
	default:
		// completed y cancelled son terminales
		return false
	}
}

// IsTerminal indica si la orden ya no admite transiciones.
func (o *CuttingOrder) IsTerminal() bool {
	return o.Status == OrderStatusCompleted || o.Status == OrderStatusCancelled
}
