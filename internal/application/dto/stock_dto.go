package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cortes-stock/internal/domain/entity"
	"github.com/tu-usuario/cortes-stock/internal/domain/ledger"
)

// InitializeStockRequest entrada para inicializar el stock de un dueño.
// Exactamente un dueño: owner_kind product|subproduct + owner_id.
type InitializeStockRequest struct {
	OwnerKind       string          `json:"owner_kind" validate:"required,oneof=product subproduct"`
	OwnerID         string          `json:"owner_id" validate:"required,uuid"`
	InitialQuantity decimal.Decimal `json:"initial_quantity"`
	Location        string          `json:"location" validate:"omitempty,max=100"`
	Reason          string          `json:"reason" validate:"omitempty,max=500"`
}

// AdjustStockRequest entrada para un ajuste manual (delta con signo, nunca cero).
type AdjustStockRequest struct {
	Delta  decimal.Decimal `json:"delta"`
	Reason string          `json:"reason" validate:"omitempty,max=500"`
}

// StockRecordResponse salida de un registro de stock.
type StockRecordResponse struct {
	ID         string          `json:"id"`
	OwnerKind  string          `json:"owner_kind"`
	OwnerID    string          `json:"owner_id"`
	Quantity   decimal.Decimal `json:"quantity"`
	Location   string          `json:"location,omitempty"`
	Status     string          `json:"status"`
	CreatedBy  string          `json:"created_by"`
	CreatedAt  time.Time       `json:"created_at"`
	ModifiedBy string          `json:"modified_by"`
	ModifiedAt time.Time       `json:"modified_at"`
	DeletedAt  *time.Time      `json:"deleted_at,omitempty"`
}

// StockEventResponse salida de una entrada del libro de stock.
type StockEventResponse struct {
	ID             string          `json:"id"`
	StockID        string          `json:"stock_id"`
	QuantityChange decimal.Decimal `json:"quantity_change"`
	Type           string          `json:"type"`
	Actor          string          `json:"actor"`
	Note           string          `json:"note,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// ReconcileResponse salida de la conciliación libro vs. cantidad.
type ReconcileResponse struct {
	StockID    string          `json:"stock_id"`
	Quantity   decimal.Decimal `json:"quantity"`
	LedgerSum  decimal.Decimal `json:"ledger_sum"`
	Drift      decimal.Decimal `json:"drift"`
	Consistent bool            `json:"consistent"`
}

// ToReconcileResponse mapea el reporte de conciliación a su DTO de salida.
func ToReconcileResponse(r *ledger.Report) *ReconcileResponse {
	if r == nil {
		return nil
	}
	return &ReconcileResponse{
		StockID:    r.StockID,
		Quantity:   r.Quantity,
		LedgerSum:  r.LedgerSum,
		Drift:      r.Drift,
		Consistent: r.Consistent,
	}
}

// ToStockRecordResponse mapea la entidad a su DTO de salida.
func ToStockRecordResponse(s *entity.StockRecord) *StockRecordResponse {
	if s == nil {
		return nil
	}
	return &StockRecordResponse{
		ID:         s.ID,
		OwnerKind:  s.Owner.Kind,
		OwnerID:    s.Owner.ID,
		Quantity:   s.Quantity,
		Location:   s.Location,
		Status:     s.Status,
		CreatedBy:  s.CreatedBy,
		CreatedAt:  s.CreatedAt,
		ModifiedBy: s.ModifiedBy,
		ModifiedAt: s.ModifiedAt,
		DeletedAt:  s.DeletedAt,
	}
}

// ToStockEventResponses mapea la lista de eventos a DTOs de salida.
func ToStockEventResponses(events []*entity.StockEvent) []*StockEventResponse {
	out := make([]*StockEventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, &StockEventResponse{
			ID:             e.ID,
			StockID:        e.StockID,
			QuantityChange: e.QuantityChange,
			Type:           e.Type,
			Actor:          e.Actor,
			Note:           e.Note,
			CreatedAt:      e.CreatedAt,
		})
	}
	return out
}
