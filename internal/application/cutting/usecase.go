package cutting

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cortes-stock/internal/domain"
	"github.com/tu-usuario/cortes-stock/internal/domain/entity"
	"github.com/tu-usuario/cortes-stock/internal/domain/repository"
)

// UseCase orquesta el ciclo de vida de las órdenes de corte:
// pending -> in_process -> completed, con cancelación desde pending/in_process.
// Complete es la única transición que mueve stock.
type UseCase struct {
	txRunner       TxRunner
	dispatcher     StockDispatcher
	orderRepo      repository.CuttingOrderRepository // lecturas fuera de tx
	subproductRepo repository.SubproductRepository
	userRepo       repository.UserRepository
}

// NewUseCase construye el caso de uso de órdenes de corte.
func NewUseCase(
	txRunner TxRunner,
	dispatcher StockDispatcher,
	orderRepo repository.CuttingOrderRepository,
	subproductRepo repository.SubproductRepository,
	userRepo repository.UserRepository,
) *UseCase {
	return &UseCase{
		txRunner:       txRunner,
		dispatcher:     dispatcher,
		orderRepo:      orderRepo,
		subproductRepo: subproductRepo,
		userRepo:       userRepo,
	}
}

// ItemInput una línea de la orden a crear.
type ItemInput struct {
	SubproductID string
	Quantity     decimal.Decimal // > 0
}

// CreateInput entrada para crear una orden de corte.
type CreateInput struct {
	Customer   string
	Items      []ItemInput
	Actor      string
	AssignedTo string // opcional
}

// Create valida y persiste la orden con sus items en una transacción, en estado
// pending. No toca el stock: la disponibilidad se verifica y consume recién al
// completar, para no reservar stock que quizá nunca se corte.
func (uc *UseCase) Create(ctx context.Context, in CreateInput) (*entity.CuttingOrder, error) {
	if in.Customer == "" || in.Actor == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.SubproductID == "" || !item.Quantity.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		// El subproducto debe existir en el catálogo.
		sub, err := uc.subproductRepo.GetByID(item.SubproductID)
		if err != nil {
			return nil, err
		}
		if sub == nil {
			return nil, domain.ErrNotFound
		}
	}
	assignedBy := ""
	if in.AssignedTo != "" {
		operator, err := uc.userRepo.GetByID(in.AssignedTo)
		if err != nil {
			return nil, err
		}
		if operator == nil {
			return nil, domain.ErrUserNotFound
		}
		if !operator.CanBeAssignedCuts() {
			return nil, domain.ErrForbidden
		}
		assignedBy = in.Actor
	}

	now := time.Now()
	order := &entity.CuttingOrder{
		ID:         uuid.New().String(),
		Customer:   in.Customer,
		Status:     entity.OrderStatusPending,
		AssignedBy: assignedBy,
		AssignedTo: in.AssignedTo,
		CreatedBy:  in.Actor,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, item := range in.Items {
		order.Items = append(order.Items, entity.CuttingOrderItem{
			ID:           uuid.New().String(),
			OrderID:      order.ID,
			SubproductID: item.SubproductID,
			Quantity:     item.Quantity,
		})
	}

	err := uc.txRunner.RunCutting(ctx, func(
		orderRepo repository.CuttingOrderRepository,
		_ repository.StockRecordRepository,
		_ repository.StockEventRepository,
	) error {
		return orderRepo.Create(order)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// Assign asigna un operario a una orden pending. El operario debe existir y no
// ser administrador (regla de negocio: un admin no es operario asignable).
func (uc *UseCase) Assign(ctx context.Context, orderID, operatorID, actor string) (*entity.CuttingOrder, error) {
	if orderID == "" || operatorID == "" || actor == "" {
		return nil, domain.ErrInvalidInput
	}
	operator, err := uc.userRepo.GetByID(operatorID)
	if err != nil {
		return nil, err
	}
	if operator == nil {
		return nil, domain.ErrUserNotFound
	}
	if !operator.CanBeAssignedCuts() {
		return nil, domain.ErrForbidden
	}

	var assigned *entity.CuttingOrder
	err = uc.txRunner.RunCutting(ctx, func(
		orderRepo repository.CuttingOrderRepository,
		_ repository.StockRecordRepository,
		_ repository.StockEventRepository,
	) error {
		order, err := orderRepo.GetForUpdate(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if order.Status != entity.OrderStatusPending {
			return &domain.InvalidStateError{OrderID: order.ID, Status: order.Status, Action: "assign"}
		}
		order.AssignedTo = operatorID
		order.AssignedBy = actor
		order.UpdatedAt = time.Now()
		if err := orderRepo.UpdateAssignment(order); err != nil {
			return err
		}
		assigned = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return assigned, nil
}

// Start mueve la orden de pending a in_process (acción del operario).
func (uc *UseCase) Start(ctx context.Context, orderID, actor string) (*entity.CuttingOrder, error) {
	return uc.transition(ctx, orderID, actor, entity.OrderStatusInProcess, "start")
}

// Cancel cancela la orden desde pending o in_process. Sin efecto sobre stock.
func (uc *UseCase) Cancel(ctx context.Context, orderID, actor string) (*entity.CuttingOrder, error) {
	return uc.transition(ctx, orderID, actor, entity.OrderStatusCancelled, "cancel")
}

// transition aplica un cambio de estado simple validando la máquina de estados.
func (uc *UseCase) transition(ctx context.Context, orderID, actor, to, action string) (*entity.CuttingOrder, error) {
	if orderID == "" || actor == "" {
		return nil, domain.ErrInvalidInput
	}
	var updated *entity.CuttingOrder
	err := uc.txRunner.RunCutting(ctx, func(
		orderRepo repository.CuttingOrderRepository,
		_ repository.StockRecordRepository,
		_ repository.StockEventRepository,
	) error {
		order, err := orderRepo.GetForUpdate(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if !order.CanTransition(to) {
			return &domain.InvalidStateError{OrderID: order.ID, Status: order.Status, Action: action}
		}
		order.Status = to
		order.UpdatedAt = time.Now()
		if err := orderRepo.UpdateStatus(order); err != nil {
			return err
		}
		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Complete finaliza una orden in_process despachando el stock de todos sus
// items en una sola transacción. Bloquea los registros de stock en orden
// ascendente de ID (disciplina global de locks: evita deadlocks cuando dos
// órdenes concurrentes comparten subproductos) y luego despacha item por item.
// Si cualquier item falla, la transacción entera aborta y ningún stock baja.
func (uc *UseCase) Complete(ctx context.Context, orderID, actor string) (*entity.CuttingOrder, error) {
	if orderID == "" || actor == "" {
		return nil, domain.ErrInvalidInput
	}
	var completed *entity.CuttingOrder
	err := uc.txRunner.RunCutting(ctx, func(
		orderRepo repository.CuttingOrderRepository,
		stockRepo repository.StockRecordRepository,
		eventRepo repository.StockEventRepository,
	) error {
		order, err := orderRepo.GetForUpdate(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if order.Status != entity.OrderStatusInProcess {
			return &domain.InvalidStateError{OrderID: order.ID, Status: order.Status, Action: "complete"}
		}

		// Resolver el registro de stock de cada subproducto.
		stockBySubproduct := make(map[string]string, len(order.Items))
		for _, item := range order.Items {
			if _, ok := stockBySubproduct[item.SubproductID]; ok {
				continue
			}
			record, err := stockRepo.ResolveForOwner(entity.OwnerRef{
				Kind: entity.OwnerSubproduct,
				ID:   item.SubproductID,
			})
			if err != nil {
				return err
			}
			if record == nil {
				// Sin registro de stock: se reporta como insuficiencia total.
				return &domain.InsufficientStockError{
					SubproductID: item.SubproductID,
					Available:    decimal.Zero,
					Required:     item.Quantity,
				}
			}
			stockBySubproduct[item.SubproductID] = record.ID
		}

		// Adquirir todos los locks en orden ascendente de ID de stock. Todo
		// camino que bloquee más de un registro debe usar esta misma disciplina.
		stockIDs := make([]string, 0, len(stockBySubproduct))
		for _, id := range stockBySubproduct {
			stockIDs = append(stockIDs, id)
		}
		sort.Strings(stockIDs)
		for _, id := range stockIDs {
			if _, err := stockRepo.GetForUpdate(id); err != nil {
				return err
			}
		}

		// Despachar cada item; el re-lock por fila ya está tomado en esta tx.
		for _, item := range order.Items {
			if _, err := uc.dispatcher.DispatchForCutInTx(
				stockRepo, eventRepo,
				stockBySubproduct[item.SubproductID],
				item.Quantity, order.ID, actor,
			); err != nil {
				return err
			}
		}

		now := time.Now()
		order.Status = entity.OrderStatusCompleted
		order.CompletedAt = &now
		order.UpdatedAt = now
		if err := orderRepo.UpdateStatus(order); err != nil {
			return err
		}
		completed = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return completed, nil
}

// GetByID devuelve una orden con sus items (lectura sin locks).
func (uc *UseCase) GetByID(ctx context.Context, orderID string) (*entity.CuttingOrder, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return order, nil
}

// ListByStatus lista órdenes por estado (lectura sin locks).
func (uc *UseCase) ListByStatus(ctx context.Context, status string, limit, offset int) ([]*entity.CuttingOrder, error) {
	switch status {
	case entity.OrderStatusPending, entity.OrderStatusInProcess,
		entity.OrderStatusCompleted, entity.OrderStatusCancelled:
	default:
		return nil, domain.ErrInvalidInput
	}
	return uc.orderRepo.ListByStatus(status, limit, offset)
}
