package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase es una entrada del libro de compras. Registro append-mostly:
// se crea y se puede borrar por id, nunca se edita.
type Purchase struct {
	ID        int64
	Date      time.Time
	Supplier  string
	PaintType string
	Color     string
	Qty       decimal.Decimal
	UnitCost  decimal.Decimal
	TotalCost decimal.Decimal // qty × unit_cost, calculado al escribir y persistido
}
