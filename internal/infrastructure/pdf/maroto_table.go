// Package pdf genera los reportes tabulares descargables usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────┐
//	│              TÍTULO (centrado)              │
//	│  ┌────────┬────────┬────────┬────────────┐  │
//	│  │ col 1  │ col 2  │ col 3  │   col n    │  │  <- encabezado con borde
//	│  ├────────┼────────┼────────┼────────────┤  │
//	│  │ valor  │ valor  │ valor  │   valor    │  │  <- una fila por registro
//	│  └────────┴────────┴────────┴────────────┘  │
//	└─────────────────────────────────────────────┘
//
// Las columnas se reparten en partes iguales de la grilla; los valores van
// tal cual, sin formato de moneda. Un valor muy largo desborda su celda:
// limitación cosmética heredada del reporte original.
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/pinturas-api/internal/application/report"
)

const (
	gridCols  = 12
	rowHeight = 7
)

var (
	colorBorder     = &props.Color{Red: 60, Green: 60, Blue: 60}
	colorHeaderBack = &props.Color{Red: 230, Green: 230, Blue: 230}
)

// MarotoTableGenerator renderiza una report.Table como documento PDF.
type MarotoTableGenerator struct{}

// NewMarotoTableGenerator construye el generador.
func NewMarotoTableGenerator() *MarotoTableGenerator { return &MarotoTableGenerator{} }

// Generate genera el PDF y devuelve sus bytes.
func (g *MarotoTableGenerator) Generate(t report.Table) ([]byte, error) {
	if len(t.Header) == 0 {
		return nil, fmt.Errorf("pdf: tabla sin columnas")
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(t.Title, true).
		Build()

	m := maroto.New(cfg)

	// Título centrado en una línea
	m.AddRows(row.New(12).Add(
		col.New(gridCols).Add(
			text.New(t.Title, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Center, Top: 2,
			}),
		),
	))

	widths := columnWidths(len(t.Header))

	// Encabezado con borde y fondo gris
	headerCols := make([]core.Col, 0, len(t.Header))
	for i, name := range t.Header {
		headerCols = append(headerCols, col.New(widths[i]).Add(
			text.New(name, props.Text{Style: fontstyle.Bold, Size: 9, Left: 1, Top: 1.5}),
		).WithStyle(&props.Cell{
			BorderType:      border.Full,
			BorderColor:     colorBorder,
			BackgroundColor: colorHeaderBack,
		}))
	}
	m.AddRows(row.New(rowHeight).Add(headerCols...))

	// Una fila con borde por registro, valores textuales tal cual
	for _, r := range t.Rows {
		cols := make([]core.Col, 0, len(r))
		for i, v := range r {
			if i >= len(widths) {
				break
			}
			cols = append(cols, col.New(widths[i]).Add(
				text.New(v, props.Text{Size: 9, Left: 1, Top: 1.5}),
			).WithStyle(&props.Cell{
				BorderType:  border.Full,
				BorderColor: colorBorder,
			}))
		}
		m.AddRows(row.New(rowHeight).Add(cols...))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// columnWidths reparte la grilla de 12 en partes iguales; el sobrante se
// reparte de a uno entre las primeras columnas para sumar exactamente 12.
func columnWidths(n int) []int {
	base := gridCols / n
	rest := gridCols % n
	widths := make([]int, n)
	for i := range widths {
		widths[i] = base
		if i < rest {
			widths[i]++
		}
	}
	return widths
}
