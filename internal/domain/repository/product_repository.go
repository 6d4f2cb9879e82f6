package repository

import (
	"context"

	"github.com/jhoicas/ventas-pos/internal/domain/entity"
)

// ProductRepository puerto hacia el catálogo de productos.
type ProductRepository interface {
	List(ctx context.Context) ([]*entity.Product, error)
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	Create(ctx context.Context, product *entity.Product) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) (*entity.Product, error)
	Delete(ctx context.Context, id int64) error
}
