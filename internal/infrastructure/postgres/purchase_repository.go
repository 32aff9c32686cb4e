package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/pinturas-api/internal/domain/entity"
	"github.com/jhoicas/pinturas-api/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo implementación del libro de compras sobre PostgreSQL.
type PurchaseRepo struct {
	pool *pgxpool.Pool
}

// NewPurchaseRepository construye el adaptador del libro de compras.
func NewPurchaseRepository(pool *pgxpool.Pool) *PurchaseRepo {
	return &PurchaseRepo{pool: pool}
}

// Create persiste una compra. total_cost ya viene calculado por el caso de uso
// y se guarda tal cual: nunca se recalcula en lectura.
func (r *PurchaseRepo) Create(ctx context.Context, p *entity.Purchase) error {
	query := `
		INSERT INTO purchases (date, supplier, type, color, qty, unit_cost, total_cost)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.pool.QueryRow(ctx, query,
		p.Date, p.Supplier, p.PaintType, p.Color, p.Qty, p.UnitCost, p.TotalCost,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("insert purchase: %w", err)
	}
	return nil
}

// List devuelve todas las compras en orden de inserción (id ascendente).
func (r *PurchaseRepo) List(ctx context.Context) ([]*entity.Purchase, error) {
	query := `
		SELECT id, date, supplier, type, color, qty, unit_cost, total_cost
		FROM purchases ORDER BY id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()
	var list []*entity.Purchase
	for rows.Next() {
		var p entity.Purchase
		if err := rows.Scan(&p.ID, &p.Date, &p.Supplier, &p.PaintType, &p.Color, &p.Qty, &p.UnitCost, &p.TotalCost); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina una compra por id. DELETE incondicional: un id inexistente es no-op.
func (r *PurchaseRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM purchases WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete purchase: %w", err)
	}
	return nil
}
