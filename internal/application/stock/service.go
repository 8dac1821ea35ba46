package stock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cortes-stock/internal/domain"
	"github.com/tu-usuario/cortes-stock/internal/domain/entity"
	"github.com/tu-usuario/cortes-stock/internal/domain/ledger"
	"github.com/tu-usuario/cortes-stock/internal/domain/repository"
)

// Service implementa las operaciones transaccionales sobre el stock:
// inicializar, ajustar y despachar por corte. Toda mutación bloquea la fila
// (SELECT FOR UPDATE) antes de leer la cantidad y escribe el evento del libro
// en la misma transacción.
type Service struct {
	txRunner       TxRunner
	productRepo    repository.ProductRepository
	subproductRepo repository.SubproductRepository
	stockRepo      repository.StockRecordRepository // lecturas fuera de tx
	eventRepo      repository.StockEventRepository  // lecturas fuera de tx
}

// NewService construye el servicio de stock.
func NewService(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	subproductRepo repository.SubproductRepository,
	stockRepo repository.StockRecordRepository,
	eventRepo repository.StockEventRepository,
) *Service {
	return &Service{
		txRunner:       txRunner,
		productRepo:    productRepo,
		subproductRepo: subproductRepo,
		stockRepo:      stockRepo,
		eventRepo:      eventRepo,
	}
}

// InitializeInput entrada para inicializar el stock de un dueño.
type InitializeInput struct {
	Owner           entity.OwnerRef
	Actor           string
	InitialQuantity decimal.Decimal // >= 0
	Location        string
	Reason          string
}

// InitializeStock crea el único registro activo para el par dueño/ubicación.
// Si la cantidad inicial es > 0 escribe un evento initial_receipt en la misma
// transacción. Devuelve DuplicateStockError si el par ya tiene registro activo:
// el caller debe ajustar, no volver a crear.
func (s *Service) InitializeStock(ctx context.Context, in InitializeInput) (*entity.StockRecord, error) {
	if !in.Owner.Valid() || in.Actor == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.InitialQuantity.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	// El dueño debe existir en el catálogo antes de entrar al núcleo.
	if err := s.validateOwner(in.Owner); err != nil {
		return nil, err
	}

	now := time.Now()
	record := &entity.StockRecord{
		ID:         uuid.New().String(),
		Owner:      in.Owner,
		Quantity:   in.InitialQuantity,
		Location:   in.Location,
		Status:     entity.StockStatusActive,
		CreatedBy:  in.Actor,
		CreatedAt:  now,
		ModifiedBy: in.Actor,
		ModifiedAt: now,
	}

	err := s.txRunner.Run(ctx, func(
		stockRepo repository.StockRecordRepository,
		eventRepo repository.StockEventRepository,
	) error {
		existing, err := stockRepo.GetActiveByOwner(in.Owner, in.Location)
		if err != nil {
			return err
		}
		if existing != nil {
			return &domain.DuplicateStockError{
				OwnerKind: in.Owner.Kind,
				OwnerID:   in.Owner.ID,
				Location:  in.Location,
			}
		}
		if err := stockRepo.Create(record); err != nil {
			return err
		}
		if in.InitialQuantity.IsPositive() {
			return eventRepo.Create(&entity.StockEvent{
				ID:             uuid.New().String(),
				StockID:        record.ID,
				QuantityChange: in.InitialQuantity,
				Type:           entity.EventInitialReceipt,
				Actor:          in.Actor,
				Note:           in.Reason,
				CreatedAt:      now,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

// AdjustStock aplica un delta manual (positivo o negativo) sobre un registro
// activo. Bloquea la fila antes de leer la cantidad para serializar ajustes
// concurrentes; el lock se libera al commit. Devuelve NegativeResultError si
// cantidad+delta < 0 y ErrZeroDelta si delta == 0.
func (s *Service) AdjustStock(ctx context.Context, stockID, actor string, delta decimal.Decimal, reason string) (*entity.StockRecord, error) {
	if stockID == "" || actor == "" {
		return nil, domain.ErrInvalidInput
	}
	if delta.IsZero() {
		return nil, domain.ErrZeroDelta
	}

	var updated *entity.StockRecord
	err := s.txRunner.Run(ctx, func(
		stockRepo repository.StockRecordRepository,
		eventRepo repository.StockEventRepository,
	) error {
		record, err := stockRepo.GetForUpdate(stockID)
		if err != nil {
			return err
		}
		if record == nil {
			return domain.ErrNotFound
		}
		if !record.IsActive() {
			return domain.ErrStockDeleted
		}
		newQty := record.Quantity.Add(delta)
		if newQty.IsNegative() {
			return &domain.NegativeResultError{
				StockID: record.ID,
				Current: record.Quantity,
				Delta:   delta,
			}
		}
		now := time.Now()
		record.Quantity = newQty
		record.ModifiedBy = actor
		record.ModifiedAt = now
		if err := stockRepo.UpdateQuantity(record); err != nil {
			return err
		}
		eventType := entity.EventManualAdjustmentIn
		if delta.IsNegative() {
			eventType = entity.EventManualAdjustmentOut
		}
		if err := eventRepo.Create(&entity.StockEvent{
			ID:             uuid.New().String(),
			StockID:        record.ID,
			QuantityChange: delta,
			Type:           eventType,
			Actor:          actor,
			Note:           reason,
			CreatedAt:      now,
		}); err != nil {
			return err
		}
		updated = record
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DispatchForCut es el débito especializado que usa la finalización de órdenes
// de corte. Existe separado del ajuste manual para que el libro diga sin
// ambigüedad por qué se movió el stock.
func (s *Service) DispatchForCut(ctx context.Context, stockID string, quantity decimal.Decimal, orderID, actor string) (*entity.StockRecord, error) {
	var updated *entity.StockRecord
	err := s.txRunner.Run(ctx, func(
		stockRepo repository.StockRecordRepository,
		eventRepo repository.StockEventRepository,
	) error {
		record, err := s.DispatchForCutInTx(stockRepo, eventRepo, stockID, quantity, orderID, actor)
		if err != nil {
			return err
		}
		updated = record
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DispatchForCutInTx ejecuta el despacho usando los repositorios del caller
// (misma transacción). Es la vía que usa la finalización de órdenes de corte
// para que el despacho de cada item y el cambio de estado de la orden hagan
// commit juntos o no hagan commit en absoluto.
func (s *Service) DispatchForCutInTx(
	stockRepo repository.StockRecordRepository,
	eventRepo repository.StockEventRepository,
	stockID string,
	quantity decimal.Decimal,
	orderID, actor string,
) (*entity.StockRecord, error) {
	if stockID == "" || actor == "" || !quantity.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	record, err := stockRepo.GetForUpdate(stockID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domain.ErrNotFound
	}
	if !record.IsActive() {
		return nil, domain.ErrStockDeleted
	}
	// Solo stock de subproducto se despacha por corte.
	if record.Owner.Kind != entity.OwnerSubproduct {
		return nil, domain.ErrInvalidInput
	}
	if record.Quantity.LessThan(quantity) {
		return nil, &domain.InsufficientStockError{
			StockID:      record.ID,
			SubproductID: record.Owner.ID,
			Available:    record.Quantity,
			Required:     quantity,
		}
	}
	now := time.Now()
	record.Quantity = record.Quantity.Sub(quantity)
	record.ModifiedBy = actor
	record.ModifiedAt = now
	if err := stockRepo.UpdateQuantity(record); err != nil {
		return nil, err
	}
	if err := eventRepo.Create(&entity.StockEvent{
		ID:             uuid.New().String(),
		StockID:        record.ID,
		QuantityChange: quantity.Neg(),
		Type:           entity.EventCutDispatch,
		Actor:          actor,
		Note:           "orden de corte " + orderID,
		CreatedAt:      now,
	}); err != nil {
		return nil, err
	}
	return record, nil
}

// SoftDeleteStock marca el registro como eliminado (transición terminal).
// La cantidad queda congelada en su último valor; ajustes posteriores fallan.
func (s *Service) SoftDeleteStock(ctx context.Context, stockID, actor string) (*entity.StockRecord, error) {
	if stockID == "" || actor == "" {
		return nil, domain.ErrInvalidInput
	}
	var deleted *entity.StockRecord
	err := s.txRunner.Run(ctx, func(
		stockRepo repository.StockRecordRepository,
		eventRepo repository.StockEventRepository,
	) error {
		record, err := stockRepo.GetForUpdate(stockID)
		if err != nil {
			return err
		}
		if record == nil {
			return domain.ErrNotFound
		}
		if !record.IsActive() {
			return domain.ErrStockDeleted
		}
		now := time.Now()
		record.Status = entity.StockStatusDeleted
		record.DeletedBy = actor
		record.DeletedAt = &now
		record.ModifiedBy = actor
		record.ModifiedAt = now
		if err := stockRepo.SoftDelete(record); err != nil {
			return err
		}
		deleted = record
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

// GetStock devuelve un registro por ID (lectura sin locks).
func (s *Service) GetStock(ctx context.Context, stockID string) (*entity.StockRecord, error) {
	record, err := s.stockRepo.GetByID(stockID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domain.ErrNotFound
	}
	return record, nil
}

// ListStock lista registros de stock (lectura sin locks).
func (s *Service) ListStock(ctx context.Context, limit, offset int) ([]*entity.StockRecord, error) {
	return s.stockRepo.List(limit, offset)
}

// ListStockEvents devuelve el libro de un registro, más recientes primero.
// Lectura sin locks: nunca bloquea a los escritores.
func (s *Service) ListStockEvents(ctx context.Context, stockID string, limit, offset int) ([]*entity.StockEvent, error) {
	record, err := s.stockRepo.GetByID(stockID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domain.ErrNotFound
	}
	return s.eventRepo.ListByStock(stockID, limit, offset)
}

// ReconcileStock compara la cantidad materializada de un registro con la suma
// de su libro. Lectura sin locks: un drift reportado durante escrituras
// concurrentes debe re-verificarse antes de intervenir.
func (s *Service) ReconcileStock(ctx context.Context, stockID string) (*ledger.Report, error) {
	record, err := s.stockRepo.GetByID(stockID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domain.ErrNotFound
	}
	sum, err := s.eventRepo.SumByStock(stockID)
	if err != nil {
		return nil, err
	}
	report := ledger.Reconcile(record, sum)
	return &report, nil
}

// validateOwner consulta el catálogo: el dueño debe existir y, si es producto,
// no debe manejar su stock por subproductos.
func (s *Service) validateOwner(owner entity.OwnerRef) error {
	switch owner.Kind {
	case entity.OwnerProduct:
		product, err := s.productRepo.GetByID(owner.ID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if product.HasSubproducts {
			// El stock de un producto con variantes se lleva por subproducto.
			return domain.ErrInvalidInput
		}
	case entity.OwnerSubproduct:
		subproduct, err := s.subproductRepo.GetByID(owner.ID)
		if err != nil {
			return err
		}
		if subproduct == nil {
			return domain.ErrNotFound
		}
	default:
		return domain.ErrInvalidInput
	}
	return nil
}
