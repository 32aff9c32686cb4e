package repository

import (
	"context"

	"github.com/jhoicas/pinturas-api/internal/domain/entity"
)

// ReportRepository consultas de solo lectura para inventario y contabilidad.
type ReportRepository interface {
	// StockRows agrupa compras y ventas por (tipo, color), resta y devuelve
	// solo filas con stock > 0, ordenadas por tipo y color ascendente.
	StockRows(ctx context.Context) ([]*entity.StockRow, error)

	// LedgerTotals devuelve las sumas de tabla completa de total_cost y
	// total_sale (cero si el libro está vacío).
	LedgerTotals(ctx context.Context) (entity.LedgerTotals, error)

	// PurchaseAmounts y SaleAmounts devuelven los pares (fecha, total) de cada
	// libro, insumo de las series semanales.
	PurchaseAmounts(ctx context.Context) ([]entity.DatedAmount, error)
	SaleAmounts(ctx context.Context) ([]entity.DatedAmount, error)
}
