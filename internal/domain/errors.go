package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrZeroDelta          = errors.New("el ajuste de stock no puede ser cero")
	ErrStockDeleted       = errors.New("el registro de stock está eliminado")
)

// DuplicateStockError indica que ya existe un registro de stock activo para el
// par dueño/ubicación. El caller debe ajustar el existente, no crear otro.
type DuplicateStockError struct {
	OwnerKind string
	OwnerID   string
	Location  string
}

func (e *DuplicateStockError) Error() string {
	return fmt.Sprintf("ya existe stock activo para %s %s (ubicación %q)", e.OwnerKind, e.OwnerID, e.Location)
}

// NegativeResultError indica que un ajuste manual dejaría la cantidad negativa.
type NegativeResultError struct {
	StockID string
	Current decimal.Decimal
	Delta   decimal.Decimal
}

func (e *NegativeResultError) Error() string {
	return fmt.Sprintf("el ajuste %s sobre stock %s dejaría cantidad negativa (actual %s)",
		e.Delta, e.StockID, e.Current)
}

// InsufficientStockError indica que no hay cantidad suficiente para un despacho
// de corte. Incluye disponible y requerido para que el caller pueda reaccionar.
type InsufficientStockError struct {
	StockID      string
	SubproductID string
	Available    decimal.Decimal
	Required     decimal.Decimal
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para subproducto %s: disponible %s, requerido %s",
		e.SubproductID, e.Available, e.Required)
}

// InvalidStateError indica una transición no permitida por la máquina de
// estados de la orden de corte.
type InvalidStateError struct {
	OrderID string
	Status  string // estado actual de la orden
	Action  string // acción intentada: assign, start, complete, cancel
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("la orden %s en estado %q no permite la acción %q", e.OrderID, e.Status, e.Action)
}
