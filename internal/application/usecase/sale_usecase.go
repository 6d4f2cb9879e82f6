package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/ventas-pos/internal/application/dto"
	"github.com/jhoicas/ventas-pos/internal/domain/entity"
	"github.com/jhoicas/ventas-pos/internal/domain/repository"
)

// SaleUseCase consultas, edición y baja de ventas. Las altas pasan por el checkout.
type SaleUseCase struct {
	repo repository.SaleRepository
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(repo repository.SaleRepository) *SaleUseCase {
	return &SaleUseCase{repo: repo}
}

// CurrentMonth ventas del mes en curso con la suma de la página.
func (uc *SaleUseCase) CurrentMonth(ctx context.Context, page dto.PageRequest) (*dto.SaleListResponse, error) {
	p, err := uc.repo.ListCurrentMonth(ctx, repository.PageRequest{Page: page.Page, Size: page.Size})
	if err != nil {
		return nil, err
	}
	items, total := dto.FromSales(p.Items)
	return &dto.SaleListResponse{Items: items, Page: dto.FromPage(p), TotalAmount: total}, nil
}

// GetByID obtiene una venta.
func (uc *SaleUseCase) GetByID(ctx context.Context, id int64) (*dto.SaleResponse, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.FromSale(s)
	return &out, nil
}

// Update reemplaza las líneas, el cliente y el pago de una venta existente.
func (uc *SaleUseCase) Update(ctx context.Context, id int64, in dto.SaleUpdateRequest) (*dto.SaleResponse, error) {
	if err := in.Validate().Err(); err != nil {
		return nil, err
	}
	draft := entity.SaleDraft{
		CustomerID: in.CustomerID,
		Items:      make([]entity.SaleDraftItem, 0, len(in.Items)),
		PaidAmount: in.PaidAmount,
		Remark:     strings.TrimSpace(in.Remark),
	}
	for _, it := range in.Items {
		draft.Items = append(draft.Items, entity.SaleDraftItem{ProductID: it.ProductID, Qty: it.Qty, Price: it.Price})
	}
	s, err := uc.repo.Update(ctx, id, draft)
	if err != nil {
		return nil, err
	}
	out := dto.FromSale(s)
	return &out, nil
}

// Delete elimina la venta; la API remota repone stock y deuda.
func (uc *SaleUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}
