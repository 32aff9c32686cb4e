package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/pinturas-api/internal/domain/entity"
	"github.com/jhoicas/pinturas-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para inventario y contabilidad.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// StockRows deriva la existencia por (tipo, color): FULL OUTER JOIN de las sumas
// de ambos libros, con el lado ausente en cero, filtrando a stock > 0.
// Orden documentado: tipo y color ascendente (clave de agrupación).
func (r *ReportRepo) StockRows(ctx context.Context) ([]*entity.StockRow, error) {
	const query = `
	WITH purchased AS (
	    SELECT type, color, SUM(qty) AS qty FROM purchases GROUP BY type, color
	), sold AS (
	    SELECT type, color, SUM(qty) AS qty FROM sales GROUP BY type, color
	)
	SELECT
	    COALESCE(p.type,  s.type)          AS type,
	    COALESCE(p.color, s.color)         AS color,
	    COALESCE(p.qty, 0)                 AS purchased,
	    COALESCE(s.qty, 0)                 AS sold,
	    COALESCE(p.qty, 0) - COALESCE(s.qty, 0) AS stock
	FROM purchased p
	FULL OUTER JOIN sold s ON s.type = p.type AND s.color = p.color
	WHERE COALESCE(p.qty, 0) - COALESCE(s.qty, 0) > 0
	ORDER BY 1, 2`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("report.StockRows: %w", err)
	}
	defer rows.Close()

	var results []*entity.StockRow
	for rows.Next() {
		var row entity.StockRow
		if err := rows.Scan(&row.PaintType, &row.Color, &row.Purchased, &row.Sold, &row.Stock); err != nil {
			return nil, fmt.Errorf("report.StockRows scan: %w", err)
		}
		results = append(results, &row)
	}
	return results, rows.Err()
}

// LedgerTotals devuelve las sumas de tabla completa de ambos libros.
// COALESCE para devolver cero con libros vacíos.
func (r *ReportRepo) LedgerTotals(ctx context.Context) (entity.LedgerTotals, error) {
	const query = `
	SELECT
	    COALESCE((SELECT SUM(total_cost) FROM purchases), 0) AS purchase_cost,
	    COALESCE((SELECT SUM(total_sale) FROM sales),     0) AS sale_revenue`

	var t entity.LedgerTotals
	if err := r.pool.QueryRow(ctx, query).Scan(&t.PurchaseCost, &t.SaleRevenue); err != nil {
		return entity.LedgerTotals{}, fmt.Errorf("report.LedgerTotals: %w", err)
	}
	return t, nil
}

// PurchaseAmounts devuelve los pares (fecha, total_cost) del libro de compras.
func (r *ReportRepo) PurchaseAmounts(ctx context.Context) ([]entity.DatedAmount, error) {
	return r.amounts(ctx, `SELECT date, total_cost FROM purchases ORDER BY date`)
}

// SaleAmounts devuelve los pares (fecha, total_sale) del libro de ventas.
func (r *ReportRepo) SaleAmounts(ctx context.Context) ([]entity.DatedAmount, error) {
	return r.amounts(ctx, `SELECT date, total_sale FROM sales ORDER BY date`)
}

func (r *ReportRepo) amounts(ctx context.Context, query string) ([]entity.DatedAmount, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("report.amounts: %w", err)
	}
	defer rows.Close()

	var results []entity.DatedAmount
	for rows.Next() {
		var a entity.DatedAmount
		if err := rows.Scan(&a.Date, &a.Amount); err != nil {
			return nil, fmt.Errorf("report.amounts scan: %w", err)
		}
		results = append(results, a)
	}
	return results, rows.Err()
}
