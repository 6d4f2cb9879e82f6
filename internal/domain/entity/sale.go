package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale venta registrada en la API remota. TotalPrice y Debt son autoritativos del servidor.
type Sale struct {
	ID         int64
	Customer   CustomerRef
	Items      []SaleItem
	TotalPrice decimal.Decimal
	PaidAmount decimal.Decimal
	Debt       decimal.Decimal
	Remark     string
	CreatedAt  time.Time
}

// SaleItem línea de una venta.
type SaleItem struct {
	Product ProductRef
	Qty     int
	Price   decimal.Decimal
}

// LineTotal cantidad × precio.
func (i SaleItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Qty)))
}

// TotalQty suma de cantidades de la venta.
func (s *Sale) TotalQty() int {
	n := 0
	for _, it := range s.Items {
		n += it.Qty
	}
	return n
}

// SaleDraft cuerpo de una venta nueva: sin totales, el servidor los recalcula.
type SaleDraft struct {
	CustomerID int64
	Items      []SaleDraftItem
	PaidAmount decimal.Decimal
	Remark     string
}

// SaleDraftItem producto, cantidad y precio unitario.
type SaleDraftItem struct {
	ProductID int64
	Qty       int
	Price     decimal.Decimal
}
