package restapi

import (
	"context"

	"github.com/jhoicas/ventas-pos/internal/domain/entity"
	"github.com/jhoicas/ventas-pos/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository sobre /products.
type ProductRepo struct {
	res resource[productJSON]
}

// NewProductRepository construye el adaptador.
func NewProductRepository(c *Client) *ProductRepo {
	return &ProductRepo{res: resource[productJSON]{c: c, path: "/products"}}
}

// List GET /products
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	list, err := r.res.list(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Product, 0, len(list))
	for i := range list {
		out = append(out, toProduct(&list[i]))
	}
	return out, nil
}

// GetByID GET /products/{id}
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	p, err := r.res.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProduct(p), nil
}

// Create POST /products
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	p, err := r.res.create(ctx, fromProduct(product), "")
	if err != nil {
		return nil, err
	}
	return toProduct(p), nil
}

// Update PUT /products/{id}
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	p, err := r.res.update(ctx, product.ID, fromProduct(product), "")
	if err != nil {
		return nil, err
	}
	return toProduct(p), nil
}

// Delete DELETE /products/{id}
func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	return r.res.delete(ctx, id)
}
