package report

import "github.com/jhoicas/pinturas-api/internal/application/dto"

// Table es la forma tabular neutra que consumen los exportadores CSV y PDF:
// un título, una fila de encabezados y las filas con los valores ya en texto,
// tal cual (sin formato de moneda ni truncado).
type Table struct {
	Title  string
	Header []string
	Rows   [][]string
}

// StockTable arma la tabla exportable del inventario.
func StockTable(rows []dto.StockRowDTO) Table {
	t := Table{
		Title:  "Paint Inventory Report",
		Header: []string{"type", "color", "purchased", "sold", "stock"},
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{
			r.PaintType,
			r.Color,
			r.Purchased.String(),
			r.Sold.String(),
			r.Stock.String(),
		})
	}
	return t
}
