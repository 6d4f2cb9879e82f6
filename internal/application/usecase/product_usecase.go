package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/ventas-pos/internal/application/dto"
	"github.com/jhoicas/ventas-pos/internal/domain/entity"
	"github.com/jhoicas/ventas-pos/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. El stock lo descuenta la API remota al vender.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// List lista productos; search filtra por nombre o tipo.
func (uc *ProductUseCase) List(ctx context.Context, search string) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		if matches(search, p.Name, p.Category) {
			out = append(out, dto.FromProduct(p))
		}
	}
	return out, nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.FromProduct(p)
	return &out, nil
}

// Create valida el formulario y crea el producto.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if err := in.Validate().Err(); err != nil {
		return nil, err
	}
	p, err := uc.repo.Create(ctx, toProduct(0, in))
	if err != nil {
		return nil, err
	}
	out := dto.FromProduct(p)
	return &out, nil
}

// Update reemplaza los datos del producto.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if err := in.Validate().Err(); err != nil {
		return nil, err
	}
	p, err := uc.repo.Update(ctx, toProduct(id, in))
	if err != nil {
		return nil, err
	}
	out := dto.FromProduct(p)
	return &out, nil
}

// Delete elimina el producto.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func toProduct(id int64, in dto.ProductRequest) *entity.Product {
	return &entity.Product{
		ID:            id,
		Name:          strings.TrimSpace(in.Name),
		Category:      strings.TrimSpace(in.ProductType),
		Color:         strings.TrimSpace(in.ProductColor),
		PurchasePrice: in.PurchasePrice,
		Price:         in.Price,
		Stock:         in.Stock,
		Remark:        strings.TrimSpace(in.Remark),
	}
}
