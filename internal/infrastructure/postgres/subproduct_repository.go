package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/cortes-stock/internal/domain/entity"
	"github.com/tu-usuario/cortes-stock/internal/domain/repository"
)

var _ repository.SubproductRepository = (*SubproductRepo)(nil)

// SubproductRepo adaptador de solo lectura hacia el catálogo de subproductos.
type SubproductRepo struct {
	q Querier
}

// NewSubproductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSubproductRepository(q Querier) *SubproductRepo {
	return &SubproductRepo{q: q}
}

// GetByID obtiene un subproducto por ID. Devuelve (nil, nil) si no existe.
func (r *SubproductRepo) GetByID(id string) (*entity.Subproduct, error) {
	query := `
		SELECT id, product_id, sku, name, created_at, updated_at
		FROM subproducts WHERE id = $1`
	var s entity.Subproduct
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.ProductID, &s.SKU, &s.Name, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subproduct: %w", err)
	}
	return &s, nil
}
