package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/cortes-stock/internal/domain"
	"github.com/tu-usuario/cortes-stock/internal/domain/entity"
	"github.com/tu-usuario/cortes-stock/internal/domain/repository"
)

var _ repository.StockRecordRepository = (*StockRecordRepo)(nil)

const stockRecordColumns = `id, owner_kind, owner_id, quantity, location, status,
		created_by, created_at, modified_by, modified_at, deleted_by, deleted_at`

// StockRecordRepo implementación de StockRecordRepository sobre PostgreSQL
// (usable con pool o tx). Tabla stock_records con índice único parcial sobre
// (owner_kind, owner_id, location) WHERE status = 'active' y CHECK quantity >= 0.
type StockRecordRepo struct {
	q Querier
}

// NewStockRecordRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockRecordRepository(q Querier) *StockRecordRepo {
	return &StockRecordRepo{q: q}
}

// Create persiste un registro nuevo. Si ya existe uno activo para el par
// dueño/ubicación (carrera entre dos inicializadores) devuelve DuplicateStockError.
func (r *StockRecordRepo) Create(record *entity.StockRecord) error {
	query := `
		INSERT INTO stock_records (id, owner_kind, owner_id, quantity, location, status,
			created_by, created_at, modified_by, modified_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		record.ID, record.Owner.Kind, record.Owner.ID, record.Quantity,
		record.Location, record.Status,
		record.CreatedBy, record.CreatedAt, record.ModifiedBy, record.ModifiedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return &domain.DuplicateStockError{
				OwnerKind: record.Owner.Kind,
				OwnerID:   record.Owner.ID,
				Location:  record.Location,
			}
		}
		return fmt.Errorf("insert stock record: %w", err)
	}
	return nil
}

// GetByID obtiene un registro por ID. Devuelve (nil, nil) si no existe.
func (r *StockRecordRepo) GetByID(id string) (*entity.StockRecord, error) {
	query := `SELECT ` + stockRecordColumns + ` FROM stock_records WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get stock record")
}

// GetActiveByOwner obtiene el registro activo del dueño en la ubicación dada.
func (r *StockRecordRepo) GetActiveByOwner(owner entity.OwnerRef, location string) (*entity.StockRecord, error) {
	query := `
		SELECT ` + stockRecordColumns + `
		FROM stock_records
		WHERE owner_kind = $1 AND owner_id = $2 AND location = $3 AND status = 'active'`
	return r.scanOne(r.q.QueryRow(context.Background(), query, owner.Kind, owner.ID, location), "get stock by owner")
}

// ResolveForOwner devuelve el registro activo más antiguo del dueño, en
// cualquier ubicación (resolución de stock para despacho de cortes).
func (r *StockRecordRepo) ResolveForOwner(owner entity.OwnerRef) (*entity.StockRecord, error) {
	query := `
		SELECT ` + stockRecordColumns + `
		FROM stock_records
		WHERE owner_kind = $1 AND owner_id = $2 AND status = 'active'
		ORDER BY created_at, id
		LIMIT 1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, owner.Kind, owner.ID), "resolve stock for owner")
}

// GetForUpdate obtiene el registro y bloquea la fila (SELECT FOR UPDATE).
// El lock se mantiene hasta el commit/rollback de la transacción del Querier.
func (r *StockRecordRepo) GetForUpdate(id string) (*entity.StockRecord, error) {
	query := `SELECT ` + stockRecordColumns + ` FROM stock_records WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get stock record for update")
}

// UpdateQuantity persiste cantidad y auditoría de modificación.
func (r *StockRecordRepo) UpdateQuantity(record *entity.StockRecord) error {
	query := `
		UPDATE stock_records
		SET quantity = $2, modified_by = $3, modified_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		record.ID, record.Quantity, record.ModifiedBy, record.ModifiedAt)
	if err != nil {
		return fmt.Errorf("update stock quantity: %w", err)
	}
	return nil
}

// SoftDelete marca el registro como eliminado; la cantidad queda congelada.
func (r *StockRecordRepo) SoftDelete(record *entity.StockRecord) error {
	query := `
		UPDATE stock_records
		SET status = 'deleted', deleted_by = $2, deleted_at = $3, modified_by = $2, modified_at = $3
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, record.ID, record.DeletedBy, record.DeletedAt)
	if err != nil {
		return fmt.Errorf("soft delete stock record: %w", err)
	}
	return nil
}

// List lista registros ordenados por creación descendente.
func (r *StockRecordRepo) List(limit, offset int) ([]*entity.StockRecord, error) {
	query := `
		SELECT ` + stockRecordColumns + `
		FROM stock_records
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock records: %w", err)
	}
	defer rows.Close()

	var list []*entity.StockRecord
	for rows.Next() {
		record, err := r.scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock record: %w", err)
		}
		list = append(list, record)
	}
	return list, rows.Err()
}

func (r *StockRecordRepo) scanOne(row pgx.Row, op string) (*entity.StockRecord, error) {
	record, err := r.scanRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return record, nil
}

func (r *StockRecordRepo) scanRow(row pgx.Row) (*entity.StockRecord, error) {
	var s entity.StockRecord
	var deletedBy *string
	err := row.Scan(
		&s.ID, &s.Owner.Kind, &s.Owner.ID, &s.Quantity, &s.Location, &s.Status,
		&s.CreatedBy, &s.CreatedAt, &s.ModifiedBy, &s.ModifiedAt, &deletedBy, &s.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	if deletedBy != nil {
		s.DeletedBy = *deletedBy
	}
	return &s, nil
}
