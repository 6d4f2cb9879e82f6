package pdf_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-pos/internal/application/dto"
	"github.com/jhoicas/ventas-pos/internal/infrastructure/pdf"
)

func TestSaleReceipt(t *testing.T) {
	g := pdf.NewMarotoPDFGenerator("Ventas POS", time.FixedZone("ICT", 7*3600))
	b, err := g.SaleReceipt(dto.SaleResponse{
		ID:       12,
		Customer: dto.RefResponse{ID: 7, Name: "Sok"},
		Items: []dto.SaleItemResponse{
			{ProductID: 1, ProductName: "Shirt", Qty: 5, Price: decimal.NewFromInt(5), LineTotal: decimal.NewFromInt(25)},
		},
		TotalPrice: decimal.NewFromInt(25),
		PaidAmount: decimal.NewFromInt(10),
		Debt:       decimal.NewFromInt(15),
		Remark:     "thanks",
		CreatedAt:  time.Date(2026, 10, 14, 3, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")))
}

func TestCustomerStatement(t *testing.T) {
	g := pdf.NewMarotoPDFGenerator("Ventas POS", nil)
	b, err := g.CustomerStatement(dto.CustomerStatementResponse{
		Customer: dto.CustomerResponse{ID: 7, Name: "Sok", Phone: "012 345 678"},
		Sales: []dto.SaleResponse{
			{ID: 1, TotalPrice: decimal.NewFromInt(30), PaidAmount: decimal.NewFromInt(4), CreatedAt: time.Now()},
		},
		Payments: []dto.PaymentResponse{
			{ID: 3, Amount: decimal.NewFromInt(4), PaymentDate: time.Now(), Remark: "cash"},
		},
		TotalSales:    decimal.NewFromInt(30),
		TotalPayments: decimal.NewFromInt(4),
		TotalDebt:     decimal.NewFromInt(26),
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")))
}
