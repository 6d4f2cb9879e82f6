package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseItemResponse línea de una compra.
type PurchaseItemResponse struct {
	ProductID   int64           `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
}

// PurchaseResponse salida de una compra.
type PurchaseResponse struct {
	ID         int64                  `json:"id"`
	Supplier   string                 `json:"supplier"`
	Items      []PurchaseItemResponse `json:"items"`
	TotalPrice decimal.Decimal        `json:"totalPrice"`
	Remark     string                 `json:"remark"`
	CreatedAt  time.Time              `json:"createdAt"`
}

// PurchaseMonthResponse compras de un mes con su total.
type PurchaseMonthResponse struct {
	Month       int                `json:"month"`
	Year        int                `json:"year"`
	Items       []PurchaseResponse `json:"items"`
	TotalAmount decimal.Decimal    `json:"totalAmount"`
}

// PurchaseItemsResponse página de líneas de una compra.
type PurchaseItemsResponse struct {
	Items []PurchaseItemResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}
