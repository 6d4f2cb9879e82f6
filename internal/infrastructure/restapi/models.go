package restapi

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ventas-pos/internal/domain/entity"
	"github.com/jhoicas/ventas-pos/internal/domain/repository"
)

// Formatos JSON de la API remota.

type refJSON struct {
	ID   int64  `json:"id"`
	Name string `json:"name,omitempty"`
}

type productJSON struct {
	ID            int64           `json:"id,omitempty"`
	Name          string          `json:"name"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	Price         decimal.Decimal `json:"price"`
	ProductType   string          `json:"productType"`
	ProductColor  string          `json:"productColor,omitempty"`
	Stock         int             `json:"stock"`
	Remark        string          `json:"remark,omitempty"`
}

type customerJSON struct {
	ID        int64            `json:"id,omitempty"`
	Name      string           `json:"name"`
	Phone     string           `json:"phone,omitempty"`
	Address   string           `json:"address,omitempty"`
	TotalDebt *decimal.Decimal `json:"totalDebt,omitempty"`
}

type saleItemJSON struct {
	Product refJSON         `json:"product"`
	Qty     int             `json:"qty"`
	Price   decimal.Decimal `json:"price"`
}

type saleJSON struct {
	ID         int64           `json:"id"`
	Customer   refJSON         `json:"customer"`
	Items      []saleItemJSON  `json:"items"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
	PaidAmount decimal.Decimal `json:"paidAmount"`
	Debt       decimal.Decimal `json:"debt"`
	Remark     string          `json:"remark"`
	CreatedAt  string          `json:"createdAt"`
}

// saleWriteJSON cuerpo de alta o edición: sin totales de línea, el servidor los recalcula.
type saleWriteJSON struct {
	Customer   refJSON         `json:"customer"`
	Items      []saleItemJSON  `json:"items"`
	PaidAmount decimal.Decimal `json:"paidAmount"`
	Remark     string          `json:"remark,omitempty"`
}

type purchaseItemJSON struct {
	Product   refJSON         `json:"product"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

type purchaseJSON struct {
	ID         int64              `json:"id,omitempty"`
	Supplier   string             `json:"supplier"`
	Items      []purchaseItemJSON `json:"items"`
	TotalPrice decimal.Decimal    `json:"totalPrice"`
	CreatedAt  string             `json:"createdAt,omitempty"`
	Remark     string             `json:"remark,omitempty"`
}

type paymentJSON struct {
	ID          int64           `json:"id,omitempty"`
	Customer    refJSON         `json:"customer"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate string          `json:"paymentDate,omitempty"`
	Remark      string          `json:"remark,omitempty"`
}

type pageJSON[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Number        int   `json:"number"`
	Size          int   `json:"size"`
}

// listOrPage acepta un arreglo plano o una página {content: [...]}.
type listOrPage[T any] struct {
	Items []T
}

func (l *listOrPage[T]) UnmarshalJSON(b []byte) error {
	if trimmed := bytes.TrimSpace(b); len(trimmed) > 0 && trimmed[0] == '[' {
		return json.Unmarshal(trimmed, &l.Items)
	}
	var p pageJSON[T]
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	l.Items = p.Content
	return nil
}

// ── conversión ────────────────────────────────────────────────────────────────

func toProduct(p *productJSON) *entity.Product {
	return &entity.Product{
		ID:            p.ID,
		Name:          p.Name,
		Category:      p.ProductType,
		Color:         p.ProductColor,
		PurchasePrice: p.PurchasePrice,
		Price:         p.Price,
		Stock:         p.Stock,
		Remark:        p.Remark,
	}
}

func fromProduct(p *entity.Product) productJSON {
	return productJSON{
		Name:          p.Name,
		PurchasePrice: p.PurchasePrice,
		Price:         p.Price,
		ProductType:   p.Category,
		ProductColor:  p.Color,
		Stock:         p.Stock,
		Remark:        p.Remark,
	}
}

func toCustomer(c *customerJSON) *entity.Customer {
	out := &entity.Customer{ID: c.ID, Name: c.Name, Phone: c.Phone, Address: c.Address}
	if c.TotalDebt != nil {
		out.TotalDebt = *c.TotalDebt
	}
	return out
}

func fromCustomer(c *entity.Customer) customerJSON {
	return customerJSON{Name: c.Name, Phone: c.Phone, Address: c.Address}
}

func (c *Client) toSale(s *saleJSON) *entity.Sale {
	items := make([]entity.SaleItem, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, entity.SaleItem{
			Product: entity.ProductRef{ID: it.Product.ID, Name: it.Product.Name},
			Qty:     it.Qty,
			Price:   it.Price,
		})
	}
	return &entity.Sale{
		ID:         s.ID,
		Customer:   entity.CustomerRef{ID: s.Customer.ID, Name: s.Customer.Name},
		Items:      items,
		TotalPrice: s.TotalPrice,
		PaidAmount: s.PaidAmount,
		Debt:       s.Debt,
		Remark:     s.Remark,
		CreatedAt:  c.parseTime(s.CreatedAt),
	}
}

func fromSaleDraft(d entity.SaleDraft) saleWriteJSON {
	items := make([]saleItemJSON, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, saleItemJSON{Product: refJSON{ID: it.ProductID}, Qty: it.Qty, Price: it.Price})
	}
	return saleWriteJSON{
		Customer:   refJSON{ID: d.CustomerID},
		Items:      items,
		PaidAmount: d.PaidAmount,
		Remark:     d.Remark,
	}
}

func (c *Client) toPurchase(p *purchaseJSON) *entity.Purchase {
	return &entity.Purchase{
		ID:         p.ID,
		Supplier:   p.Supplier,
		Items:      toPurchaseItems(p.Items),
		TotalPrice: p.TotalPrice,
		Remark:     p.Remark,
		CreatedAt:  c.parseTime(p.CreatedAt),
	}
}

func toPurchaseItems(in []purchaseItemJSON) []entity.PurchaseItem {
	items := make([]entity.PurchaseItem, 0, len(in))
	for _, it := range in {
		items = append(items, entity.PurchaseItem{
			Product:   entity.ProductRef{ID: it.Product.ID, Name: it.Product.Name},
			Quantity:  it.Quantity,
			Price:     it.Price,
			LineTotal: it.LineTotal,
		})
	}
	return items
}

func (c *Client) fromPurchase(p *entity.Purchase) purchaseJSON {
	items := make([]purchaseItemJSON, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, purchaseItemJSON{
			Product:   refJSON{ID: it.Product.ID},
			Quantity:  it.Quantity,
			Price:     it.Price,
			LineTotal: it.LineTotal,
		})
	}
	return purchaseJSON{
		Supplier:   p.Supplier,
		Items:      items,
		TotalPrice: p.TotalPrice,
		CreatedAt:  c.formatTime(p.CreatedAt),
		Remark:     p.Remark,
	}
}

func (c *Client) toPayment(p *paymentJSON) *entity.Payment {
	return &entity.Payment{
		ID:          p.ID,
		Customer:    entity.CustomerRef{ID: p.Customer.ID, Name: p.Customer.Name},
		Amount:      p.Amount,
		PaymentDate: c.parseTime(p.PaymentDate),
		Remark:      p.Remark,
	}
}

func (c *Client) fromPayment(p *entity.Payment) paymentJSON {
	return paymentJSON{
		Customer:    refJSON{ID: p.Customer.ID},
		Amount:      p.Amount,
		PaymentDate: c.formatTime(p.PaymentDate),
		Remark:      p.Remark,
	}
}

func toPage[W any, E any](p *pageJSON[W], conv func(*W) E) *repository.Page[E] {
	items := make([]E, 0, len(p.Content))
	for i := range p.Content {
		items = append(items, conv(&p.Content[i]))
	}
	return &repository.Page[E]{
		Items:         items,
		Page:          p.Number,
		Size:          p.Size,
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages,
	}
}
