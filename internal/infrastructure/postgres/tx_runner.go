package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/cortes-stock/internal/application/cutting"
	"github.com/tu-usuario/cortes-stock/internal/application/stock"
	"github.com/tu-usuario/cortes-stock/internal/domain/repository"
)

// Ensure TxRunner implements stock.TxRunner and cutting.TxRunner.
var _ stock.TxRunner = (*TxRunner)(nil)
var _ cutting.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL. Los locks de
// fila (SELECT FOR UPDATE) tomados dentro del callback se liberan al commit o
// rollback, nunca antes.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con los repositorios de stock atados a
// la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	stockRepo repository.StockRecordRepository,
	eventRepo repository.StockEventRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewStockRecordRepository(tx), NewStockEventRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunCutting inicia una transacción con los repositorios del workflow de corte
// (orden + stock + libro) para que despacho y cambio de estado sean atómicos.
func (r *TxRunner) RunCutting(ctx context.Context, fn func(
	orderRepo repository.CuttingOrderRepository,
	stockRepo repository.StockRecordRepository,
	eventRepo repository.StockEventRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewCuttingOrderRepository(tx), NewStockRecordRepository(tx), NewStockEventRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
