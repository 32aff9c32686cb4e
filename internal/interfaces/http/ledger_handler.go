package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/pinturas-api/internal/application/dto"
	"github.com/jhoicas/pinturas-api/internal/application/ledger"
	"github.com/jhoicas/pinturas-api/internal/domain"
	"github.com/jhoicas/pinturas-api/pkg/logger"
)

// LedgerHandler maneja los libros de compras y ventas.
type LedgerHandler struct {
	uc  *ledger.LedgerUseCase
	log *logger.Logger
}

// NewLedgerHandler construye el handler del libro.
func NewLedgerHandler(uc *ledger.LedgerUseCase, log *logger.Logger) *LedgerHandler {
	return &LedgerHandler{uc: uc, log: log}
}

// RecordPurchase godoc
// @Summary      Registrar compra
// @Tags         purchases
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body  dto.RecordPurchaseRequest  true  "compra"
// @Success      201   {object}  dto.PurchaseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/purchases [post]
func (h *LedgerHandler) RecordPurchase(c *fiber.Ctx) error {
	var in dto.RecordPurchaseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RecordPurchase(c.Context(), in)
	if err != nil {
		return h.ledgerError(c, err, "registrar compra")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RecordSale godoc
// @Summary      Registrar venta
// @Tags         sales
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body  dto.RecordSaleRequest  true  "venta"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *LedgerHandler) RecordSale(c *fiber.Ctx) error {
	var in dto.RecordSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RecordSale(c.Context(), in)
	if err != nil {
		return h.ledgerError(c, err, "registrar venta")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListPurchases godoc
// @Summary      Listar compras
// @Tags         purchases
// @Produce      json
// @Security     Bearer
// @Success      200  {array}  dto.PurchaseResponse
// @Router       /api/purchases [get]
func (h *LedgerHandler) ListPurchases(c *fiber.Ctx) error {
	out, err := h.uc.ListPurchases(c.Context())
	if err != nil {
		return h.ledgerError(c, err, "listar compras")
	}
	return c.JSON(out)
}

// ListSales godoc
// @Summary      Listar ventas
// @Tags         sales
// @Produce      json
// @Security     Bearer
// @Success      200  {array}  dto.SaleResponse
// @Router       /api/sales [get]
func (h *LedgerHandler) ListSales(c *fiber.Ctx) error {
	out, err := h.uc.ListSales(c.Context())
	if err != nil {
		return h.ledgerError(c, err, "listar ventas")
	}
	return c.JSON(out)
}

// DeletePurchase godoc
// @Summary      Eliminar compra por id (no-op si no existe)
// @Tags         purchases
// @Security     Bearer
// @Param        id  path  int  true  "id de la compra"
// @Success      204
// @Router       /api/purchases/{id} [delete]
func (h *LedgerHandler) DeletePurchase(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	if err := h.uc.DeletePurchase(c.Context(), id); err != nil {
		return h.ledgerError(c, err, "eliminar compra")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteSale godoc
// @Summary      Eliminar venta por id (no-op si no existe)
// @Tags         sales
// @Security     Bearer
// @Param        id  path  int  true  "id de la venta"
// @Success      204
// @Router       /api/sales/{id} [delete]
func (h *LedgerHandler) DeleteSale(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	if err := h.uc.DeleteSale(c.Context(), id); err != nil {
		return h.ledgerError(c, err, "eliminar venta")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *LedgerHandler) ledgerError(c *fiber.Ctx, err error, op string) error {
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "VALIDATION",
			Message: "fecha YYYY-MM-DD, tipo y color requeridos; cantidad y precio no negativos",
		})
	}
	h.log.Error().Err(err).Msg(op)
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}
