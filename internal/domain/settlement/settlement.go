// Package settlement calcula la deuda resultante de una venta y valida el monto pagado.
package settlement

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ventas-pos/internal/domain"
)

// Result totales de una liquidación. Se calcula, nunca se guarda.
type Result struct {
	TotalAmount decimal.Decimal
	PaidAmount  decimal.Decimal
	DebtDelta   decimal.Decimal
}

// ComputeDebt total - paid, sin piso: un valor negativo es saldo a favor.
func ComputeDebt(total, paid decimal.Decimal) decimal.Decimal {
	return total.Sub(paid)
}

// Settle arma el Result para total y paid.
func Settle(total, paid decimal.Decimal) Result {
	return Result{
		TotalAmount: total,
		PaidAmount:  paid,
		DebtDelta:   ComputeDebt(total, paid),
	}
}

// Check datos necesarios para validar un envío.
type Check struct {
	LineCount       int
	HasCounterparty bool
	Total           decimal.Decimal
	Paid            decimal.Decimal
	ExistingDebt    decimal.Decimal
	// SkipPaid omite las reglas del monto pagado (compras: no hay abono).
	SkipPaid bool
}

// Validate aplica las reglas previas al envío: carrito no vacío, contraparte elegida y
// 0 ≤ paid ≤ existingDebt + total. Cualquier violación bloquea el envío completo.
func Validate(in Check) domain.ValidationResult {
	var res domain.ValidationResult
	if in.LineCount == 0 {
		res.Add("lines", domain.ReasonEmptyCart)
	}
	if !in.HasCounterparty {
		res.Add("counterparty", domain.ReasonMissingCounterparty)
	}
	if in.SkipPaid {
		return res
	}
	if in.Paid.IsNegative() {
		res.Add("paidAmount", domain.ReasonNegativePaid)
	} else if in.Paid.GreaterThan(in.ExistingDebt.Add(in.Total)) {
		res.Add("paidAmount", domain.ReasonPaidExceedsLiability)
	}
	return res
}
