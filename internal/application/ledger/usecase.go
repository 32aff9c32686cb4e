// Package ledger contiene los casos de uso de los libros de compras y ventas.
// Los registros son append-mostly: se crean, se listan y se borran por id,
// nunca se editan. El total se calcula una sola vez al escribir y se persiste
// (desnormalización deliberada para lectura rápida).
package ledger

import (
	"context"
	"time"

	"github.com/jhoicas/pinturas-api/internal/application/dto"
	"github.com/jhoicas/pinturas-api/internal/domain"
	"github.com/jhoicas/pinturas-api/internal/domain/entity"
	"github.com/jhoicas/pinturas-api/internal/domain/repository"
)

// LedgerUseCase registra y administra compras y ventas.
type LedgerUseCase struct {
	purchaseRepo repository.PurchaseRepository
	saleRepo     repository.SaleRepository
}

// NewLedgerUseCase construye el caso de uso del libro.
func NewLedgerUseCase(purchaseRepo repository.PurchaseRepository, saleRepo repository.SaleRepository) *LedgerUseCase {
	return &LedgerUseCase{purchaseRepo: purchaseRepo, saleRepo: saleRepo}
}

// RecordPurchase valida, calcula total_cost = qty × unit_cost y persiste.
// Cantidades o costos negativos se rechazan con ErrInvalidInput.
func (uc *LedgerUseCase) RecordPurchase(ctx context.Context, in dto.RecordPurchaseRequest) (*dto.PurchaseResponse, error) {
	date, err := parseDate(in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if in.PaintType == "" || in.Color == "" || in.Qty.IsNegative() || in.UnitCost.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	p := &entity.Purchase{
		Date:      date,
		Supplier:  in.Supplier,
		PaintType: in.PaintType,
		Color:     in.Color,
		Qty:       in.Qty,
		UnitCost:  in.UnitCost,
		TotalCost: in.Qty.Mul(in.UnitCost),
	}
	if err := uc.purchaseRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	return toPurchaseResponse(p), nil
}

// RecordSale valida, calcula total_sale = qty × unit_price y persiste.
func (uc *LedgerUseCase) RecordSale(ctx context.Context, in dto.RecordSaleRequest) (*dto.SaleResponse, error) {
	date, err := parseDate(in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if in.PaintType == "" || in.Color == "" || in.Qty.IsNegative() || in.UnitPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	s := &entity.Sale{
		Date:      date,
		Customer:  in.Customer,
		PaintType: in.PaintType,
		Color:     in.Color,
		Qty:       in.Qty,
		UnitPrice: in.UnitPrice,
		TotalSale: in.Qty.Mul(in.UnitPrice),
	}
	if err := uc.saleRepo.Create(ctx, s); err != nil {
		return nil, err
	}
	return toSaleResponse(s), nil
}

// DeletePurchase elimina por id. Idempotente: un id inexistente no es error.
func (uc *LedgerUseCase) DeletePurchase(ctx context.Context, id int64) error {
	return uc.purchaseRepo.Delete(ctx, id)
}

// DeleteSale elimina por id. Idempotente.
func (uc *LedgerUseCase) DeleteSale(ctx context.Context, id int64) error {
	return uc.saleRepo.Delete(ctx, id)
}

// ListPurchases devuelve todas las compras para la vista de administración.
func (uc *LedgerUseCase) ListPurchases(ctx context.Context) ([]dto.PurchaseResponse, error) {
	list, err := uc.purchaseRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PurchaseResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toPurchaseResponse(p))
	}
	return out, nil
}

// ListSales devuelve todas las ventas para la vista de administración.
func (uc *LedgerUseCase) ListSales(ctx context.Context) ([]dto.SaleResponse, error) {
	list, err := uc.saleRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *toSaleResponse(s))
	}
	return out, nil
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dto.DateFormat, s)
}

func toPurchaseResponse(p *entity.Purchase) *dto.PurchaseResponse {
	return &dto.PurchaseResponse{
		ID:        p.ID,
		Date:      p.Date.Format(dto.DateFormat),
		Supplier:  p.Supplier,
		PaintType: p.PaintType,
		Color:     p.Color,
		Qty:       p.Qty,
		UnitCost:  p.UnitCost,
		TotalCost: p.TotalCost,
	}
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	return &dto.SaleResponse{
		ID:        s.ID,
		Date:      s.Date.Format(dto.DateFormat),
		Customer:  s.Customer,
		PaintType: s.PaintType,
		Color:     s.Color,
		Qty:       s.Qty,
		UnitPrice: s.UnitPrice,
		TotalSale: s.TotalSale,
	}
}
