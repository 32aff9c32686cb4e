package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/pinturas-api/internal/application/dto"
	"github.com/jhoicas/pinturas-api/internal/application/report"
	"github.com/jhoicas/pinturas-api/internal/domain"
	"github.com/jhoicas/pinturas-api/internal/infrastructure/export"
	"github.com/jhoicas/pinturas-api/pkg/logger"
)

// TableGenerator renderiza una tabla de reporte como documento binario.
// Lo implementa pdf.MarotoTableGenerator.
type TableGenerator interface {
	Generate(t report.Table) ([]byte, error)
}

// ReportHandler maneja inventario, contabilidad y exportaciones.
type ReportHandler struct {
	uc  *report.ReportUseCase
	pdf TableGenerator
	log *logger.Logger
}

// NewReportHandler construye el handler de reportes.
func NewReportHandler(uc *report.ReportUseCase, pdf TableGenerator, log *logger.Logger) *ReportHandler {
	return &ReportHandler{uc: uc, pdf: pdf, log: log}
}

// Inventory godoc
// @Summary      Inventario derivado por (tipo, color), solo stock > 0
// @Tags         inventory
// @Produce      json
// @Security     Bearer
// @Success      200  {array}  dto.StockRowDTO
// @Router       /api/inventory [get]
func (h *ReportHandler) Inventory(c *fiber.Ctx) error {
	rows, err := h.uc.ComputeStock(c.Context())
	if err != nil {
		return h.reportError(c, err, "calcular inventario")
	}
	return c.JSON(rows)
}

// InventoryByType godoc
// @Summary      Stock total por tipo de pintura (insumo del gráfico de barras)
// @Tags         inventory
// @Produce      json
// @Security     Bearer
// @Success      200  {array}  dto.TypeStockDTO
// @Router       /api/inventory/by-type [get]
func (h *ReportHandler) InventoryByType(c *fiber.Ctx) error {
	rows, err := h.uc.ComputeStock(c.Context())
	if err != nil {
		return h.reportError(c, err, "calcular inventario")
	}
	return c.JSON(report.AggregateByType(rows))
}

// InventoryCSV godoc
// @Summary      Descargar inventario como CSV
// @Tags         inventory
// @Produce      text/csv
// @Security     Bearer
// @Success      200  {string}  string
// @Router       /api/inventory/export/csv [get]
func (h *ReportHandler) InventoryCSV(c *fiber.Ctx) error {
	rows, err := h.uc.ComputeStock(c.Context())
	if err != nil {
		return h.reportError(c, err, "calcular inventario")
	}
	data, err := export.CSV(report.StockTable(rows))
	if err != nil {
		return h.reportError(c, err, "exportar CSV")
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="inventory.csv"`)
	return c.Send(data)
}

// InventoryPDF godoc
// @Summary      Descargar inventario como PDF tabular
// @Tags         inventory
// @Produce      application/pdf
// @Security     Bearer
// @Success      200  {string}  string
// @Router       /api/inventory/export/pdf [get]
func (h *ReportHandler) InventoryPDF(c *fiber.Ctx) error {
	rows, err := h.uc.ComputeStock(c.Context())
	if err != nil {
		return h.reportError(c, err, "calcular inventario")
	}
	data, err := h.pdf.Generate(report.StockTable(rows))
	if err != nil {
		return h.reportError(c, err, "exportar PDF")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="inventory.pdf"`)
	return c.Send(data)
}

// AccountingSummary godoc
// @Summary      Totales de compras y ventas y ganancia (sin filtro de fechas)
// @Tags         accounting
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  dto.AccountingSummaryDTO
// @Router       /api/accounting/summary [get]
func (h *ReportHandler) AccountingSummary(c *fiber.Ctx) error {
	out, err := h.uc.AccountingSummary(c.Context())
	if err != nil {
		return h.reportError(c, err, "resumen contable")
	}
	return c.JSON(out)
}

// WeeklySeries godoc
// @Summary      Serie semanal de un libro (semana que termina en domingo)
// @Tags         accounting
// @Produce      json
// @Security     Bearer
// @Param        ledger  query  string  true  "purchases | sales"
// @Success      200  {array}  dto.WeekPointDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/accounting/weekly [get]
func (h *ReportHandler) WeeklySeries(c *fiber.Ctx) error {
	ledger := c.Query("ledger", report.LedgerSales)
	out, err := h.uc.WeeklyTotals(c.Context(), ledger)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code:    "VALIDATION",
				Message: "ledger debe ser 'purchases' o 'sales'",
			})
		}
		return h.reportError(c, err, "serie semanal")
	}
	return c.JSON(out)
}

func (h *ReportHandler) reportError(c *fiber.Ctx, err error, op string) error {
	h.log.Error().Err(err).Msg(op)
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}
