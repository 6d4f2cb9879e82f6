package dto

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ventas-pos/internal/domain"
)

// SaleItemRequest línea de una venta editada.
type SaleItemRequest struct {
	ProductID int64           `json:"productId"`
	Qty       int             `json:"qty"`
	Price     decimal.Decimal `json:"price"`
}

// SaleUpdateRequest reemplazo completo de una venta. La API remota recalcula totales, stock y deuda.
type SaleUpdateRequest struct {
	CustomerID int64             `json:"customerId"`
	Items      []SaleItemRequest `json:"items"`
	PaidAmount decimal.Decimal   `json:"paidAmount"`
	Remark     string            `json:"remark"`
}

// Validate cliente y al menos una línea; cantidades positivas, precios y monto pagado no negativos.
func (r SaleUpdateRequest) Validate() domain.ValidationResult {
	var res domain.ValidationResult
	if r.CustomerID <= 0 {
		res.Add("customerId", domain.ReasonRequired)
	}
	if len(r.Items) == 0 {
		res.Add("items", domain.ReasonEmptyCart)
	}
	for i, it := range r.Items {
		if it.ProductID <= 0 {
			res.Add(fmt.Sprintf("items[%d].productId", i), domain.ReasonRequired)
		}
		if it.Qty <= 0 {
			res.Add(fmt.Sprintf("items[%d].qty", i), domain.ReasonMustBePositive)
		}
		if it.Price.IsNegative() {
			res.Add(fmt.Sprintf("items[%d].price", i), domain.ReasonMustNotBeNegative)
		}
	}
	if r.PaidAmount.IsNegative() {
		res.Add("paidAmount", domain.ReasonNegativePaid)
	}
	return res
}

// SaleItemResponse línea de una venta.
type SaleItemResponse struct {
	ProductID   int64           `json:"productId"`
	ProductName string          `json:"productName"`
	Qty         int             `json:"qty"`
	Price       decimal.Decimal `json:"price"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
}

// SaleResponse salida de una venta.
type SaleResponse struct {
	ID         int64              `json:"id"`
	Customer   RefResponse        `json:"customer"`
	Items      []SaleItemResponse `json:"items"`
	TotalPrice decimal.Decimal    `json:"totalPrice"`
	PaidAmount decimal.Decimal    `json:"paidAmount"`
	Debt       decimal.Decimal    `json:"debt"`
	TotalQty   int                `json:"totalQty"`
	Remark     string             `json:"remark"`
	CreatedAt  time.Time          `json:"createdAt"`
}

// SaleListResponse página de ventas con la suma de sus totales.
type SaleListResponse struct {
	Items       []SaleResponse  `json:"items"`
	Page        PageResponse    `json:"page"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}
