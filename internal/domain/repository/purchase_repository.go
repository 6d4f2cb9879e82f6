package repository

import (
	"context"

	"github.com/jhoicas/ventas-pos/internal/domain/entity"
)

// PurchaseRepository puerto hacia las compras a proveedores.
type PurchaseRepository interface {
	Create(ctx context.Context, purchase *entity.Purchase, idempotencyKey string) (*entity.Purchase, error)
	Update(ctx context.Context, purchase *entity.Purchase, idempotencyKey string) (*entity.Purchase, error)
	GetByID(ctx context.Context, id int64) (*entity.Purchase, error)
	Delete(ctx context.Context, id int64) error
	ListByMonth(ctx context.Context, month, year int) ([]*entity.Purchase, error)
	Items(ctx context.Context, id int64, page PageRequest) (*Page[entity.PurchaseItem], error)
}
