package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/cortes-stock/internal/domain/entity"
	"github.com/tu-usuario/cortes-stock/internal/domain/repository"
)

var _ repository.CuttingOrderRepository = (*CuttingOrderRepo)(nil)

const cuttingOrderColumns = `id, customer, status, assigned_by, assigned_to,
		created_by, created_at, updated_at, completed_at`

// CuttingOrderRepo implementación de CuttingOrderRepository sobre PostgreSQL
// (usable con pool o tx). Los items viven en cutting_order_items y son
// composición: se insertan con la orden y se cargan junto a ella.
type CuttingOrderRepo struct {
	q Querier
}

// NewCuttingOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCuttingOrderRepository(q Querier) *CuttingOrderRepo {
	return &CuttingOrderRepo{q: q}
}

// Create persiste la orden y todos sus items. Debe llamarse con un Querier
// transaccional para que orden e items queden juntos.
func (r *CuttingOrderRepo) Create(order *entity.CuttingOrder) error {
	ctx := context.Background()
	query := `
		INSERT INTO cutting_orders (id, customer, status, assigned_by, assigned_to,
			created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		order.ID, order.Customer, order.Status,
		nullable(order.AssignedBy), nullable(order.AssignedTo),
		order.CreatedBy, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert cutting order: %w", err)
	}
	itemQuery := `
		INSERT INTO cutting_order_items (id, order_id, subproduct_id, quantity)
		VALUES ($1, $2, $3, $4)`
	for i := range order.Items {
		item := &order.Items[i]
		if _, err := r.q.Exec(ctx, itemQuery, item.ID, item.OrderID, item.SubproductID, item.Quantity); err != nil {
			return fmt.Errorf("insert cutting order item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene la orden con sus items, o (nil, nil) si no existe.
func (r *CuttingOrderRepo) GetByID(id string) (*entity.CuttingOrder, error) {
	query := `SELECT ` + cuttingOrderColumns + ` FROM cutting_orders WHERE id = $1`
	return r.getOne(query, id, "get cutting order")
}

// GetForUpdate obtiene la orden con sus items y bloquea su fila (SELECT FOR
// UPDATE) hasta el fin de la transacción. Serializa transiciones concurrentes.
func (r *CuttingOrderRepo) GetForUpdate(id string) (*entity.CuttingOrder, error) {
	query := `SELECT ` + cuttingOrderColumns + ` FROM cutting_orders WHERE id = $1 FOR UPDATE`
	return r.getOne(query, id, "get cutting order for update")
}

func (r *CuttingOrderRepo) getOne(query, id, op string) (*entity.CuttingOrder, error) {
	order, err := r.scanRow(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := r.loadItems(order); err != nil {
		return nil, err
	}
	return order, nil
}

// UpdateStatus persiste status, updated_at y completed_at.
func (r *CuttingOrderRepo) UpdateStatus(order *entity.CuttingOrder) error {
	query := `
		UPDATE cutting_orders
		SET status = $2, updated_at = $3, completed_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.Status, order.UpdatedAt, order.CompletedAt)
	if err != nil {
		return fmt.Errorf("update cutting order status: %w", err)
	}
	return nil
}

// UpdateAssignment persiste assigned_to, assigned_by y updated_at.
func (r *CuttingOrderRepo) UpdateAssignment(order *entity.CuttingOrder) error {
	query := `
		UPDATE cutting_orders
		SET assigned_to = $2, assigned_by = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, nullable(order.AssignedTo), nullable(order.AssignedBy), order.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update cutting order assignment: %w", err)
	}
	return nil
}

// ListByStatus lista órdenes por estado con sus items, más recientes primero.
func (r *CuttingOrderRepo) ListByStatus(status string, limit, offset int) ([]*entity.CuttingOrder, error) {
	ctx := context.Background()
	query := `
		SELECT ` + cuttingOrderColumns + `
		FROM cutting_orders
		WHERE status = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list cutting orders: %w", err)
	}
	defer rows.Close()

	var list []*entity.CuttingOrder
	byID := make(map[string]*entity.CuttingOrder)
	var ids []string
	for rows.Next() {
		order, err := r.scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cutting order: %w", err)
		}
		list = append(list, order)
		byID[order.ID] = order
		ids = append(ids, order.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return list, nil
	}

	itemQuery := `
		SELECT id, order_id, subproduct_id, quantity
		FROM cutting_order_items
		WHERE order_id = ANY($1)
		ORDER BY id`
	itemRows, err := r.q.Query(ctx, itemQuery, ids)
	if err != nil {
		return nil, fmt.Errorf("list cutting order items: %w", err)
	}
	defer itemRows.Close()
	for itemRows.Next() {
		var item entity.CuttingOrderItem
		if err := itemRows.Scan(&item.ID, &item.OrderID, &item.SubproductID, &item.Quantity); err != nil {
			return nil, fmt.Errorf("scan cutting order item: %w", err)
		}
		if order, ok := byID[item.OrderID]; ok {
			order.Items = append(order.Items, item)
		}
	}
	return list, itemRows.Err()
}

func (r *CuttingOrderRepo) loadItems(order *entity.CuttingOrder) error {
	query := `
		SELECT id, order_id, subproduct_id, quantity
		FROM cutting_order_items
		WHERE order_id = $1
		ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, order.ID)
	if err != nil {
		return fmt.Errorf("load cutting order items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var item entity.CuttingOrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.SubproductID, &item.Quantity); err != nil {
			return fmt.Errorf("scan cutting order item: %w", err)
		}
		order.Items = append(order.Items, item)
	}
	return rows.Err()
}

func (r *CuttingOrderRepo) scanRow(row pgx.Row) (*entity.CuttingOrder, error) {
	var o entity.CuttingOrder
	var assignedBy, assignedTo *string
	err := row.Scan(
		&o.ID, &o.Customer, &o.Status, &assignedBy, &assignedTo,
		&o.CreatedBy, &o.CreatedAt, &o.UpdatedAt, &o.CompletedAt,
	)
	if err != nil {
		return nil, err
	}
	if assignedBy != nil {
		o.AssignedBy = *assignedBy
	}
	if assignedTo != nil {
		o.AssignedTo = *assignedTo
	}
	return &o, nil
}

// nullable convierte "" en NULL para columnas opcionales.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
