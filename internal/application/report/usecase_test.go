package report_test

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pinturas-api/internal/application/dto"
	"github.com/jhoicas/pinturas-api/internal/application/report"
	"github.com/jhoicas/pinturas-api/internal/domain"
	"github.com/jhoicas/pinturas-api/internal/domain/entity"
)

// fakeReportRepo deriva los reportes de libros en memoria con la misma
// semántica que las consultas SQL del adaptador: agrupar por (tipo, color),
// lado ausente en cero, filtro stock > 0, orden por clave ascendente.
type fakeReportRepo struct {
	purchases []*entity.Purchase
	sales     []*entity.Sale
}

type typeColor struct{ t, c string }

func (f *fakeReportRepo) StockRows(_ context.Context) ([]*entity.StockRow, error) {
	purchased := make(map[typeColor]decimal.Decimal)
	sold := make(map[typeColor]decimal.Decimal)
	for _, p := range f.purchases {
		k := typeColor{p.PaintType, p.Color}
		purchased[k] = purchased[k].Add(p.Qty)
	}
	for _, s := range f.sales {
		k := typeColor{s.PaintType, s.Color}
		sold[k] = sold[k].Add(s.Qty)
	}
	keys := make(map[typeColor]bool)
	for k := range purchased {
		keys[k] = true
	}
	for k := range sold {
		keys[k] = true
	}
	var rows []*entity.StockRow
	for k := range keys {
		stock := purchased[k].Sub(sold[k])
		if !stock.IsPositive() {
			continue
		}
		rows = append(rows, &entity.StockRow{
			PaintType: k.t, Color: k.c,
			Purchased: purchased[k], Sold: sold[k], Stock: stock,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].PaintType != rows[j].PaintType {
			return rows[i].PaintType < rows[j].PaintType
		}
		return rows[i].Color < rows[j].Color
	})
	return rows, nil
}

func (f *fakeReportRepo) LedgerTotals(_ context.Context) (entity.LedgerTotals, error) {
	var t entity.LedgerTotals
	for _, p := range f.purchases {
		t.PurchaseCost = t.PurchaseCost.Add(p.TotalCost)
	}
	for _, s := range f.sales {
		t.SaleRevenue = t.SaleRevenue.Add(s.TotalSale)
	}
	return t, nil
}

func (f *fakeReportRepo) PurchaseAmounts(_ context.Context) ([]entity.DatedAmount, error) {
	var out []entity.DatedAmount
	for _, p := range f.purchases {
		out = append(out, entity.DatedAmount{Date: p.Date, Amount: p.TotalCost})
	}
	return out, nil
}

func (f *fakeReportRepo) SaleAmounts(_ context.Context) ([]entity.DatedAmount, error) {
	var out []entity.DatedAmount
	for _, s := range f.sales {
		out = append(out, entity.DatedAmount{Date: s.Date, Amount: s.TotalSale})
	}
	return out, nil
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func purchase(ptype, color, qty, unitCost string) *entity.Purchase {
	q, u := dec(qty), dec(unitCost)
	return &entity.Purchase{
		Date: day("2024-05-01"), PaintType: ptype, Color: color,
		Qty: q, UnitCost: u, TotalCost: q.Mul(u),
	}
}

func sale(ptype, color, qty, unitPrice string) *entity.Sale {
	q, u := dec(qty), dec(unitPrice)
	return &entity.Sale{
		Date: day("2024-05-02"), PaintType: ptype, Color: color,
		Qty: q, UnitPrice: u, TotalSale: q.Mul(u),
	}
}

// Ejemplo de punta a punta: compra 10×50, venta 4×80 sobre el mismo
// (tipo, color) → una fila {10, 4, 6}; resumen {500, 320, -180}.
func TestComputeStock_EjemploCompleto(t *testing.T) {
	repo := &fakeReportRepo{
		purchases: []*entity.Purchase{purchase("Emulsion", "White", "10", "50")},
		sales:     []*entity.Sale{sale("Emulsion", "White", "4", "80")},
	}
	uc := report.NewReportUseCase(repo)

	rows, err := uc.ComputeStock(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Emulsion", rows[0].PaintType)
	assert.Equal(t, "White", rows[0].Color)
	assert.True(t, rows[0].Purchased.Equal(dec("10")))
	assert.True(t, rows[0].Sold.Equal(dec("4")))
	assert.True(t, rows[0].Stock.Equal(dec("6")))

	sum, err := uc.AccountingSummary(context.Background())
	require.NoError(t, err)
	assert.True(t, sum.TotalPurchaseCost.Equal(dec("500")))
	assert.True(t, sum.TotalSaleRevenue.Equal(dec("320")))
	assert.True(t, sum.Profit.Equal(dec("-180")))
	assert.Contains(t, sum.ProfitDisplay, "180.00")
}

func TestComputeStock_Invariantes(t *testing.T) {
	repo := &fakeReportRepo{
		purchases: []*entity.Purchase{
			purchase("Emulsion", "White", "10", "50"),
			purchase("Emulsion", "White", "5", "48"),
			purchase("Enamel", "Blue", "3", "70"),
			purchase("Distemper", "Green", "2", "20"),
		},
		sales: []*entity.Sale{
			sale("Emulsion", "White", "4", "80"),
			sale("Distemper", "Green", "2", "35"),   // stock llega a cero: se filtra
			sale("Gloss", "Black", "1", "90"),        // solo ventas: stock negativo, se filtra
		},
	}
	uc := report.NewReportUseCase(repo)

	rows, err := uc.ComputeStock(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2, "cero y negativo no se exponen")

	for _, r := range rows {
		assert.True(t, r.Stock.IsPositive(), "solo filas con stock > 0")
		assert.True(t, r.Stock.Equal(r.Purchased.Sub(r.Sold)), "stock = purchased - sold")
	}

	// Orden documentado: clave (tipo, color) ascendente
	assert.Equal(t, "Emulsion", rows[0].PaintType)
	assert.True(t, rows[0].Purchased.Equal(dec("15")), "compras del mismo grupo se suman")
	assert.Equal(t, "Enamel", rows[1].PaintType)
	assert.True(t, rows[1].Sold.IsZero(), "lado ausente en cero")
}

func TestComputeStock_Idempotente(t *testing.T) {
	repo := &fakeReportRepo{
		purchases: []*entity.Purchase{
			purchase("Emulsion", "White", "10", "50"),
			purchase("Enamel", "Blue", "3", "70"),
		},
		sales: []*entity.Sale{sale("Emulsion", "White", "4", "80")},
	}
	uc := report.NewReportUseCase(repo)
	ctx := context.Background()

	first, err := uc.ComputeStock(ctx)
	require.NoError(t, err)
	second, err := uc.ComputeStock(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second, "sin escrituras intermedias el resultado es idéntico")
}

func TestAggregateByType(t *testing.T) {
	rows := []dto.StockRowDTO{
		{PaintType: "Emulsion", Color: "White", Stock: dec("6")},
		{PaintType: "Emulsion", Color: "Blue", Stock: dec("4")},
		{PaintType: "Enamel", Color: "Black", Stock: dec("3")},
	}
	out := report.AggregateByType(rows)
	require.Len(t, out, 2)
	assert.Equal(t, "Emulsion", out[0].PaintType)
	assert.True(t, out[0].Stock.Equal(dec("10")))
	assert.Equal(t, "Enamel", out[1].PaintType)
	assert.True(t, out[1].Stock.Equal(dec("3")))
}

func TestAccountingSummary_LibrosVacios(t *testing.T) {
	uc := report.NewReportUseCase(&fakeReportRepo{})
	sum, err := uc.AccountingSummary(context.Background())
	require.NoError(t, err)
	assert.True(t, sum.TotalPurchaseCost.IsZero())
	assert.True(t, sum.TotalSaleRevenue.IsZero())
	assert.True(t, sum.Profit.IsZero())
}

func TestWeeklyTotals_LibroInvalido(t *testing.T) {
	uc := report.NewReportUseCase(&fakeReportRepo{})
	_, err := uc.WeeklyTotals(context.Background(), "inventario")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestWeeklyTotals_PorLibro(t *testing.T) {
	repo := &fakeReportRepo{
		sales: []*entity.Sale{
			sale("Emulsion", "White", "4", "80"),  // 2024-05-02 → semana 2024-05-05
			sale("Emulsion", "White", "1", "80"),  // misma semana
		},
	}
	uc := report.NewReportUseCase(repo)

	out, err := uc.WeeklyTotals(context.Background(), report.LedgerSales)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "2024-05-05", out[0].WeekEnding)
	assert.True(t, out[0].Total.Equal(dec("400")))

	// El libro de compras está vacío: serie vacía, no error
	out, err = uc.WeeklyTotals(context.Background(), report.LedgerPurchases)
	require.NoError(t, err)
	assert.Empty(t, out)
}
