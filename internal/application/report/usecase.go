// Package report contiene el motor de reportes: inventario derivado,
// resumen contable y series semanales para los gráficos.
package report

import (
	"context"
	"sort"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pinturas-api/internal/application/dto"
	"github.com/jhoicas/pinturas-api/internal/domain"
	"github.com/jhoicas/pinturas-api/internal/domain/entity"
	"github.com/jhoicas/pinturas-api/internal/domain/repository"
)

// Libros consultables por las series semanales.
const (
	LedgerPurchases = "purchases"
	LedgerSales     = "sales"
)

// ReportUseCase deriva el inventario y agrega los totales contables.
// Toda lectura recalcula desde los libros: nada de esto se persiste.
type ReportUseCase struct {
	reportRepo repository.ReportRepository
}

// NewReportUseCase construye el motor de reportes.
func NewReportUseCase(reportRepo repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{reportRepo: reportRepo}
}

// ComputeStock devuelve las filas de inventario con stock > 0, ordenadas por
// (tipo, color) ascendente. Idempotente: sin escrituras intermedias, dos
// llamadas devuelven lo mismo.
func (uc *ReportUseCase) ComputeStock(ctx context.Context) ([]dto.StockRowDTO, error) {
	rows, err := uc.reportRepo.StockRows(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockRowDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.StockRowDTO{
			PaintType: r.PaintType,
			Color:     r.Color,
			Purchased: r.Purchased,
			Sold:      r.Sold,
			Stock:     r.Stock,
		})
	}
	return out, nil
}

// AggregateByType suma el stock por tipo de pintura, ordenado por tipo.
// Alimenta el gráfico de barras del inventario.
func AggregateByType(rows []dto.StockRowDTO) []dto.TypeStockDTO {
	byType := make(map[string]decimal.Decimal)
	for _, r := range rows {
		byType[r.PaintType] = byType[r.PaintType].Add(r.Stock)
	}
	types := make([]string, 0, len(byType))
	for t := range byType {
		types = append(types, t)
	}
	sort.Strings(types)
	out := make([]dto.TypeStockDTO, 0, len(types))
	for _, t := range types {
		out = append(out, dto.TypeStockDTO{PaintType: t, Stock: byType[t]})
	}
	return out
}

// AccountingSummary suma ambos libros completos (sin filtro de fechas) y
// calcula profit = ventas - compras. Incluye los montos formateados en INR
// para la capa de presentación.
func (uc *ReportUseCase) AccountingSummary(ctx context.Context) (*dto.AccountingSummaryDTO, error) {
	totals, err := uc.reportRepo.LedgerTotals(ctx)
	if err != nil {
		return nil, err
	}
	profit := totals.SaleRevenue.Sub(totals.PurchaseCost)
	return &dto.AccountingSummaryDTO{
		TotalPurchaseCost:        totals.PurchaseCost,
		TotalSaleRevenue:         totals.SaleRevenue,
		Profit:                   profit,
		TotalPurchaseCostDisplay: displayINR(totals.PurchaseCost),
		TotalSaleRevenueDisplay:  displayINR(totals.SaleRevenue),
		ProfitDisplay:            displayINR(profit),
	}, nil
}

// WeeklyTotals devuelve la serie semanal del libro indicado ("purchases" o "sales").
func (uc *ReportUseCase) WeeklyTotals(ctx context.Context, ledger string) ([]dto.WeekPointDTO, error) {
	var (
		points []entity.DatedAmount
		err    error
	)
	switch ledger {
	case LedgerPurchases:
		points, err = uc.reportRepo.PurchaseAmounts(ctx)
	case LedgerSales:
		points, err = uc.reportRepo.SaleAmounts(ctx)
	default:
		return nil, domain.ErrInvalidInput
	}
	if err != nil {
		return nil, err
	}
	series := WeeklySeries(points)
	out := make([]dto.WeekPointDTO, 0, len(series))
	for _, p := range series {
		out = append(out, dto.WeekPointDTO{
			WeekEnding: p.WeekEnding.Format(dto.DateFormat),
			Total:      p.Total,
		})
	}
	return out, nil
}

// displayINR formatea un monto decimal como rupias (dos decimales, símbolo ₹).
func displayINR(d decimal.Decimal) string {
	minor := d.Shift(2).Round(0).IntPart()
	return money.New(minor, money.INR).Display()
}
