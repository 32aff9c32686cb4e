package repository

import (
	"context"

	"github.com/jhoicas/pinturas-api/internal/domain/entity"
)

// PurchaseRepository puerto del libro de compras.
// Delete es idempotente: borrar un id inexistente no es error.
type PurchaseRepository interface {
	Create(ctx context.Context, p *entity.Purchase) error
	List(ctx context.Context) ([]*entity.Purchase, error)
	Delete(ctx context.Context, id int64) error
}

// SaleRepository puerto del libro de ventas, simétrico a PurchaseRepository.
type SaleRepository interface {
	Create(ctx context.Context, s *entity.Sale) error
	List(ctx context.Context) ([]*entity.Sale, error)
	Delete(ctx context.Context, id int64) error
}
