package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockRow es la existencia derivada por (tipo, color). No se persiste:
// se recalcula en cada lectura a partir de compras y ventas.
// Invariante: Stock = Purchased - Sold, y solo se exponen filas con Stock > 0.
type StockRow struct {
	PaintType string
	Color     string
	Purchased decimal.Decimal
	Sold      decimal.Decimal
	Stock     decimal.Decimal
}

// LedgerTotals son las sumas de tabla completa de ambos libros.
type LedgerTotals struct {
	PurchaseCost decimal.Decimal
	SaleRevenue  decimal.Decimal
}

// DatedAmount es un punto (fecha, monto) de un libro, insumo de las series semanales.
type DatedAmount struct {
	Date   time.Time
	Amount decimal.Decimal
}

// WeekPoint es un punto de serie semanal: semana que termina en domingo y suma del período.
type WeekPoint struct {
	WeekEnding time.Time
	Total      decimal.Decimal
}
