package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale es una entrada del libro de ventas, simétrica a Purchase.
type Sale struct {
	ID        int64
	Date      time.Time
	Customer  string
	PaintType string
	Color     string
	Qty       decimal.Decimal
	UnitPrice decimal.Decimal
	TotalSale decimal.Decimal // qty × unit_price, calculado al escribir y persistido
}
