package pdf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pinturas-api/internal/application/report"
	"github.com/jhoicas/pinturas-api/internal/infrastructure/pdf"
)

func TestGenerate_DocumentoPDF(t *testing.T) {
	g := pdf.NewMarotoTableGenerator()

	data, err := g.Generate(report.Table{
		Title:  "Paint Inventory Report",
		Header: []string{"type", "color", "purchased", "sold", "stock"},
		Rows: [][]string{
			{"Emulsion", "White", "10", "4", "6"},
			{"Enamel", "Blue", "3", "0", "3"},
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]), "los bytes deben ser un documento PDF")
}

func TestGenerate_TablaSinFilas(t *testing.T) {
	g := pdf.NewMarotoTableGenerator()

	// Inventario vacío: título y encabezado, sin filas de datos
	data, err := g.Generate(report.Table{
		Title:  "Paint Inventory Report",
		Header: []string{"type", "color", "purchased", "sold", "stock"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestGenerate_SinColumnasEsError(t *testing.T) {
	g := pdf.NewMarotoTableGenerator()
	_, err := g.Generate(report.Table{Title: "vacío"})
	assert.Error(t, err)
}
