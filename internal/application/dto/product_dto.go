package dto

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ventas-pos/internal/domain"
)

// ProductRequest formulario de alta o edición de producto.
type ProductRequest struct {
	Name          string          `json:"name"`
	ProductType   string          `json:"productType"`
	ProductColor  string          `json:"productColor"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	Price         decimal.Decimal `json:"price"`
	Stock         int             `json:"stock"`
	Remark        string          `json:"remark"`
}

// Validate name y productType obligatorios; precios y stock no negativos.
func (r ProductRequest) Validate() domain.ValidationResult {
	var res domain.ValidationResult
	if strings.TrimSpace(r.Name) == "" {
		res.Add("name", domain.ReasonRequired)
	}
	if strings.TrimSpace(r.ProductType) == "" {
		res.Add("productType", domain.ReasonRequired)
	}
	if r.PurchasePrice.IsNegative() {
		res.Add("purchasePrice", domain.ReasonMustNotBeNegative)
	}
	if r.Price.IsNegative() {
		res.Add("price", domain.ReasonMustNotBeNegative)
	}
	if r.Stock < 0 {
		res.Add("stock", domain.ReasonMustNotBeNegative)
	}
	return res
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	ProductType   string          `json:"productType"`
	ProductColor  string          `json:"productColor"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	Price         decimal.Decimal `json:"price"`
	Stock         int             `json:"stock"`
	Remark        string          `json:"remark"`
}
