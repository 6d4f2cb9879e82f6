package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase compra a proveedor. Supplier es texto libre.
type Purchase struct {
	ID         int64
	Supplier   string
	Items      []PurchaseItem
	TotalPrice decimal.Decimal
	Remark     string
	CreatedAt  time.Time
}

// PurchaseItem línea de compra; LineTotal viaja en el cuerpo.
type PurchaseItem struct {
	Product   ProductRef
	Quantity  int
	Price     decimal.Decimal
	LineTotal decimal.Decimal
}
