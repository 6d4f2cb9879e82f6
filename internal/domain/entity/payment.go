package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment abono de un cliente a su deuda.
type Payment struct {
	ID          int64
	Customer    CustomerRef
	Amount      decimal.Decimal
	PaymentDate time.Time
	Remark      string
}
