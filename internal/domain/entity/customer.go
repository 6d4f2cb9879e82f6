package entity

import "github.com/shopspring/decimal"

// Customer cliente. TotalDebt lo calcula el servidor y es de solo lectura.
type Customer struct {
	ID        int64
	Name      string
	Phone     string
	Address   string
	TotalDebt decimal.Decimal
}

// CustomerRef referencia mínima a un cliente.
type CustomerRef struct {
	ID   int64
	Name string
}
