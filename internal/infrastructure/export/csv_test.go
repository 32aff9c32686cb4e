package export_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pinturas-api/internal/application/dto"
	"github.com/jhoicas/pinturas-api/internal/application/report"
	"github.com/jhoicas/pinturas-api/internal/infrastructure/export"
)

func TestCSV_InventarioConEncabezado(t *testing.T) {
	rows := []dto.StockRowDTO{
		{
			PaintType: "Emulsion", Color: "White",
			Purchased: decimal.RequireFromString("10"),
			Sold:      decimal.RequireFromString("4"),
			Stock:     decimal.RequireFromString("6"),
		},
	}
	data, err := export.CSV(report.StockTable(rows))
	require.NoError(t, err)

	assert.Equal(t,
		"type,color,purchased,sold,stock\nEmulsion,White,10,4,6\n",
		string(data))
}

func TestCSV_QuotingEstandar(t *testing.T) {
	data, err := export.CSV(report.Table{
		Header: []string{"type", "color"},
		Rows:   [][]string{{`Emulsion, "premium"`, "Off White"}},
	})
	require.NoError(t, err)

	// Coma y comillas dentro del valor llevan el escapado estándar CSV
	assert.Equal(t, "type,color\n\"Emulsion, \"\"premium\"\"\",Off White\n", string(data))
}

func TestCSV_TablaVacia(t *testing.T) {
	data, err := export.CSV(report.StockTable(nil))
	require.NoError(t, err)
	assert.Equal(t, "type,color,purchased,sold,stock\n", string(data), "solo encabezado con inventario vacío")
}
