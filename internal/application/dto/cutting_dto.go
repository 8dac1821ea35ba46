package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cortes-stock/internal/domain/entity"
)

// CuttingOrderItemRequest una línea de la orden a crear.
type CuttingOrderItemRequest struct {
	SubproductID string          `json:"subproduct_id" validate:"required,uuid"`
	Quantity     decimal.Decimal `json:"quantity"`
}

// CreateCuttingOrderRequest entrada para crear una orden de corte.
type CreateCuttingOrderRequest struct {
	Customer   string                    `json:"customer" validate:"required,min=1,max=200"`
	AssignedTo string                    `json:"assigned_to" validate:"omitempty,uuid"`
	Items      []CuttingOrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// AssignCuttingOrderRequest entrada para asignar un operario.
type AssignCuttingOrderRequest struct {
	OperatorID string `json:"operator_id" validate:"required,uuid"`
}

// CuttingOrderItemResponse salida de una línea de la orden.
type CuttingOrderItemResponse struct {
	ID           string          `json:"id"`
	SubproductID string          `json:"subproduct_id"`
	Quantity     decimal.Decimal `json:"quantity"`
}

// CuttingOrderResponse salida de una orden de corte con sus items.
type CuttingOrderResponse struct {
	ID          string                     `json:"id"`
	Customer    string                     `json:"customer"`
	Status      string                     `json:"status"`
	AssignedBy  string                     `json:"assigned_by,omitempty"`
	AssignedTo  string                     `json:"assigned_to,omitempty"`
	CreatedBy   string                     `json:"created_by"`
	CreatedAt   time.Time                  `json:"created_at"`
	UpdatedAt   time.Time                  `json:"updated_at"`
	CompletedAt *time.Time                 `json:"completed_at,omitempty"`
	Items       []CuttingOrderItemResponse `json:"items"`
}

// ToCuttingOrderResponse mapea la entidad a su DTO de salida.
func ToCuttingOrderResponse(o *entity.CuttingOrder) *CuttingOrderResponse {
	if o == nil {
		return nil
	}
	resp := &CuttingOrderResponse{
		ID:          o.ID,
		Customer:    o.Customer,
		Status:      o.Status,
		AssignedBy:  o.AssignedBy,
		AssignedTo:  o.AssignedTo,
		CreatedBy:   o.CreatedBy,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
		CompletedAt: o.CompletedAt,
		Items:       make([]CuttingOrderItemResponse, 0, len(o.Items)),
	}
	for _, item := range o.Items {
		resp.Items = append(resp.Items, CuttingOrderItemResponse{
			ID:           item.ID,
			SubproductID: item.SubproductID,
			Quantity:     item.Quantity,
		})
	}
	return resp
}
