package dto

import "github.com/shopspring/decimal"

// SalesDayGroup ventas de un día calendario.
type SalesDayGroup struct {
	Date        string          `json:"date"`  // YYYY-MM-DD
	Label       string          `json:"label"` // "១៥ - តុលា"
	TotalAmount decimal.Decimal `json:"totalAmount"`
	TotalQty    int             `json:"totalQty"`
	Sales       []SaleResponse  `json:"sales"`
}

// SalesByDayResponse reporte de ventas agrupado por día, del más reciente al más antiguo.
type SalesByDayResponse struct {
	StartDate   string          `json:"startDate"`
	EndDate     string          `json:"endDate"`
	Days        []SalesDayGroup `json:"days"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	TotalQty    int             `json:"totalQty"`
	Page        PageResponse    `json:"page"`
}

// CustomerStatementResponse estado de cuenta de un cliente.
type CustomerStatementResponse struct {
	Customer      CustomerResponse  `json:"customer"`
	Payments      []PaymentResponse `json:"payments"`
	Sales         []SaleResponse    `json:"sales"`
	TotalPayments decimal.Decimal   `json:"totalPayments"`
	TotalSales    decimal.Decimal   `json:"totalSales"`
	TotalDebt     decimal.Decimal   `json:"totalDebt"`
}
