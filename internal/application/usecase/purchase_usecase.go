package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ventas-pos/internal/application/dto"
	"github.com/jhoicas/ventas-pos/internal/domain"
	"github.com/jhoicas/ventas-pos/internal/domain/repository"
)

// PurchaseUseCase consultas y baja de compras. Altas y ediciones pasan por el checkout.
type PurchaseUseCase struct {
	repo repository.PurchaseRepository
	loc  *time.Location
	now  func() time.Time
}

// NewPurchaseUseCase construye el caso de uso.
func NewPurchaseUseCase(repo repository.PurchaseRepository, loc *time.Location) *PurchaseUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &PurchaseUseCase{repo: repo, loc: loc, now: time.Now}
}

// ByMonth compras del mes; month o year en cero toman el mes actual.
func (uc *PurchaseUseCase) ByMonth(ctx context.Context, month, year int) (*dto.PurchaseMonthResponse, error) {
	now := uc.now().In(uc.loc)
	if month == 0 {
		month = int(now.Month())
	}
	if year == 0 {
		year = now.Year()
	}
	if month < 1 || month > 12 {
		return nil, domain.NewValidationError("month", domain.ReasonInvalidFormat)
	}
	list, err := uc.repo.ListByMonth(ctx, month, year)
	if err != nil {
		return nil, err
	}
	out := &dto.PurchaseMonthResponse{Month: month, Year: year, Items: make([]dto.PurchaseResponse, 0, len(list)), TotalAmount: decimal.Zero}
	for _, p := range list {
		out.Items = append(out.Items, dto.FromPurchase(p))
		out.TotalAmount = out.TotalAmount.Add(p.TotalPrice)
	}
	return out, nil
}

// GetByID obtiene una compra.
func (uc *PurchaseUseCase) GetByID(ctx context.Context, id int64) (*dto.PurchaseResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.FromPurchase(p)
	return &out, nil
}

// Items líneas paginadas de una compra.
func (uc *PurchaseUseCase) Items(ctx context.Context, id int64, page dto.PageRequest) (*dto.PurchaseItemsResponse, error) {
	p, err := uc.repo.Items(ctx, id, repository.PageRequest{Page: page.Page, Size: page.Size})
	if err != nil {
		return nil, err
	}
	return &dto.PurchaseItemsResponse{Items: dto.FromPurchaseItems(p.Items), Page: dto.FromPage(p)}, nil
}

// Delete elimina la compra.
func (uc *PurchaseUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}
