package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ventas-pos/internal/domain/entity"
	"github.com/jhoicas/ventas-pos/internal/domain/repository"
)

// Conversión entidad -> respuesta.

func FromProduct(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		ProductType:   p.Category,
		ProductColor:  p.Color,
		PurchasePrice: p.PurchasePrice,
		Price:         p.Price,
		Stock:         p.Stock,
		Remark:        p.Remark,
	}
}

func FromCustomer(c *entity.Customer) CustomerResponse {
	return CustomerResponse{ID: c.ID, Name: c.Name, Phone: c.Phone, Address: c.Address, TotalDebt: c.TotalDebt}
}

func FromPayment(p *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:          p.ID,
		Customer:    RefResponse{ID: p.Customer.ID, Name: p.Customer.Name},
		Amount:      p.Amount,
		PaymentDate: p.PaymentDate,
		Remark:      p.Remark,
	}
}

func FromSale(s *entity.Sale) SaleResponse {
	items := make([]SaleItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, SaleItemResponse{
			ProductID:   it.Product.ID,
			ProductName: it.Product.Name,
			Qty:         it.Qty,
			Price:       it.Price,
			LineTotal:   it.LineTotal(),
		})
	}
	return SaleResponse{
		ID:         s.ID,
		Customer:   RefResponse{ID: s.Customer.ID, Name: s.Customer.Name},
		Items:      items,
		TotalPrice: s.TotalPrice,
		PaidAmount: s.PaidAmount,
		Debt:       s.Debt,
		TotalQty:   s.TotalQty(),
		Remark:     s.Remark,
		CreatedAt:  s.CreatedAt,
	}
}

func FromPurchaseItems(in []entity.PurchaseItem) []PurchaseItemResponse {
	out := make([]PurchaseItemResponse, 0, len(in))
	for _, it := range in {
		out = append(out, PurchaseItemResponse{
			ProductID:   it.Product.ID,
			ProductName: it.Product.Name,
			Quantity:    it.Quantity,
			Price:       it.Price,
			LineTotal:   it.LineTotal,
		})
	}
	return out
}

func FromPurchase(p *entity.Purchase) PurchaseResponse {
	return PurchaseResponse{
		ID:         p.ID,
		Supplier:   p.Supplier,
		Items:      FromPurchaseItems(p.Items),
		TotalPrice: p.TotalPrice,
		Remark:     p.Remark,
		CreatedAt:  p.CreatedAt,
	}
}

// FromSales convierte y suma los totales.
func FromSales(list []*entity.Sale) ([]SaleResponse, decimal.Decimal) {
	out := make([]SaleResponse, 0, len(list))
	total := decimal.Zero
	for _, s := range list {
		out = append(out, FromSale(s))
		total = total.Add(s.TotalPrice)
	}
	return out, total
}

// FromPage metadatos de paginación.
func FromPage[T any](p *repository.Page[T]) PageResponse {
	return PageResponse{Page: p.Page, Size: p.Size, TotalElements: p.TotalElements, TotalPages: p.TotalPages}
}
