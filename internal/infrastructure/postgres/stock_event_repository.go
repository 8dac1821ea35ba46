package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cortes-stock/internal/domain/entity"
	"github.com/tu-usuario/cortes-stock/internal/domain/repository"
)

var _ repository.StockEventRepository = (*StockEventRepo)(nil)

// StockEventRepo implementación del libro de stock sobre PostgreSQL (usable con
// pool o tx). La tabla stock_events es solo-inserción: no hay UPDATE ni DELETE.
type StockEventRepo struct {
	q Querier
}

// NewStockEventRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockEventRepository(q Querier) *StockEventRepo {
	return &StockEventRepo{q: q}
}

// Create persiste un evento del libro.
func (r *StockEventRepo) Create(event *entity.StockEvent) error {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_events (id, stock_id, quantity_change, type, actor, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		event.ID, event.StockID, event.QuantityChange, event.Type,
		event.Actor, event.Note, event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock event: %w", err)
	}
	return nil
}

// ListByStock lista los eventos de un registro, más recientes primero.
func (r *StockEventRepo) ListByStock(stockID string, limit, offset int) ([]*entity.StockEvent, error) {
	query := `
		SELECT id, stock_id, quantity_change, type, actor, note, created_at
		FROM stock_events
		WHERE stock_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, stockID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock events: %w", err)
	}
	defer rows.Close()

	var list []*entity.StockEvent
	for rows.Next() {
		var e entity.StockEvent
		if err := rows.Scan(&e.ID, &e.StockID, &e.QuantityChange, &e.Type,
			&e.Actor, &e.Note, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock event: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// SumByStock suma los cambios del libro en SQL; COALESCE cubre el registro sin
// eventos.
func (r *StockEventRepo) SumByStock(stockID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(quantity_change), 0)
		FROM stock_events
		WHERE stock_id = $1`
	var sum decimal.Decimal
	if err := r.q.QueryRow(context.Background(), query, stockID).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("sum stock events: %w", err)
	}
	return sum, nil
}
