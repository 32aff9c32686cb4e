package dto

import "github.com/shopspring/decimal"

// RecordPurchaseRequest entrada para registrar una compra.
// Date en formato YYYY-MM-DD; qty y unit_cost deben ser >= 0.
type RecordPurchaseRequest struct {
	Date      string          `json:"date" validate:"required"`
	Supplier  string          `json:"supplier"`
	PaintType string          `json:"type" validate:"required"`
	Color     string          `json:"color" validate:"required"`
	Qty       decimal.Decimal `json:"qty"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
}

// RecordSaleRequest entrada para registrar una venta.
type RecordSaleRequest struct {
	Date      string          `json:"date" validate:"required"`
	Customer  string          `json:"customer"`
	PaintType string          `json:"type" validate:"required"`
	Color     string          `json:"color" validate:"required"`
	Qty       decimal.Decimal `json:"qty"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// PurchaseResponse salida de una compra registrada.
type PurchaseResponse struct {
	ID        int64           `json:"id"`
	Date      string          `json:"date"`
	Supplier  string          `json:"supplier"`
	PaintType string          `json:"type"`
	Color     string          `json:"color"`
	Qty       decimal.Decimal `json:"qty"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	TotalCost decimal.Decimal `json:"total_cost"`
}

// SaleResponse salida de una venta registrada.
type SaleResponse struct {
	ID        int64           `json:"id"`
	Date      string          `json:"date"`
	Customer  string          `json:"customer"`
	PaintType string          `json:"type"`
	Color     string          `json:"color"`
	Qty       decimal.Decimal `json:"qty"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	TotalSale decimal.Decimal `json:"total_sale"`
}
