package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ventas-pos/internal/domain"
	"github.com/jhoicas/ventas-pos/pkg/format"
)

// PaymentRequest formulario de abono. PaymentDate (YYYY-MM-DDTHH:MM) es opcional: por defecto ahora.
type PaymentRequest struct {
	CustomerID  int64           `json:"customerId"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate string          `json:"paymentDate"`
	Remark      string          `json:"remark"`
}

// Validate cliente obligatorio, monto mayor a cero y fecha con formato válido.
func (r PaymentRequest) Validate() domain.ValidationResult {
	var res domain.ValidationResult
	if r.CustomerID <= 0 {
		res.Add("customerId", domain.ReasonRequired)
	}
	if !r.Amount.IsPositive() {
		res.Add("amount", domain.ReasonMustBePositive)
	}
	if r.PaymentDate != "" {
		if _, err := format.ParseDateTimeInput(r.PaymentDate, time.UTC); err != nil {
			res.Add("paymentDate", domain.ReasonInvalidFormat)
		}
	}
	return res
}

// PaymentResponse salida de un abono.
type PaymentResponse struct {
	ID          int64           `json:"id"`
	Customer    RefResponse     `json:"customer"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate time.Time       `json:"paymentDate"`
	Remark      string          `json:"remark"`
}

// PaymentMonthResponse abonos del mes actual filtrados, con su total.
type PaymentMonthResponse struct {
	Month       int               `json:"month"`
	Year        int               `json:"year"`
	Search      string            `json:"search,omitempty"`
	Items       []PaymentResponse `json:"items"`
	TotalAmount decimal.Decimal   `json:"totalAmount"`
}
