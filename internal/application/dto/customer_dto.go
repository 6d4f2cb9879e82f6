package dto

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ventas-pos/internal/domain"
)

// CustomerRequest formulario de alta o edición de cliente.
type CustomerRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Validate name es obligatorio.
func (r CustomerRequest) Validate() domain.ValidationResult {
	var res domain.ValidationResult
	if strings.TrimSpace(r.Name) == "" {
		res.Add("name", domain.ReasonRequired)
	}
	return res
}

// CustomerResponse salida de un cliente.
type CustomerResponse struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Phone     string          `json:"phone"`
	Address   string          `json:"address"`
	TotalDebt decimal.Decimal `json:"totalDebt"`
}

// RefResponse referencia id + nombre.
type RefResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
