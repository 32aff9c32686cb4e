package dto

import "github.com/shopspring/decimal"

// StockRowDTO fila de inventario derivada por (tipo, color).
type StockRowDTO struct {
	PaintType string          `json:"type"`
	Color     string          `json:"color"`
	Purchased decimal.Decimal `json:"purchased"`
	Sold      decimal.Decimal `json:"sold"`
	Stock     decimal.Decimal `json:"stock"`
}

// TypeStockDTO existencia total por tipo de pintura (insumo del gráfico de barras).
type TypeStockDTO struct {
	PaintType string          `json:"type"`
	Stock     decimal.Decimal `json:"stock"`
}

// AccountingSummaryDTO sumas de tabla completa y ganancia.
// Los campos *_display llevan el monto formateado en INR para la capa de presentación.
type AccountingSummaryDTO struct {
	TotalPurchaseCost        decimal.Decimal `json:"total_purchase_cost"`
	TotalSaleRevenue         decimal.Decimal `json:"total_sale_revenue"`
	Profit                   decimal.Decimal `json:"profit"`
	TotalPurchaseCostDisplay string          `json:"total_purchase_cost_display"`
	TotalSaleRevenueDisplay  string          `json:"total_sale_revenue_display"`
	ProfitDisplay            string          `json:"profit_display"`
}

// WeekPointDTO punto de la serie semanal (semana que termina en domingo).
type WeekPointDTO struct {
	WeekEnding string          `json:"week_ending"`
	Total      decimal.Decimal `json:"total"`
}
