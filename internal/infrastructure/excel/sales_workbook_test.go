package excel_test

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/ventas-pos/internal/application/dto"
	"github.com/jhoicas/ventas-pos/internal/infrastructure/excel"
)

func TestSalesByDay_FilasYSubtotales(t *testing.T) {
	r := dto.SalesByDayResponse{
		StartDate: "2026-10-01",
		EndDate:   "2026-10-14",
		Days: []dto.SalesDayGroup{
			{
				Date: "2026-10-14", TotalAmount: decimal.NewFromInt(30), TotalQty: 3,
				Sales: []dto.SaleResponse{
					{ID: 2, Customer: dto.RefResponse{Name: "Sok"}, TotalQty: 2, TotalPrice: decimal.NewFromInt(20)},
					{ID: 1, Customer: dto.RefResponse{Name: "Dara"}, TotalQty: 1, TotalPrice: decimal.NewFromInt(10)},
				},
			},
			{
				Date: "2026-10-02", TotalAmount: decimal.NewFromInt(5), TotalQty: 1,
				Sales: []dto.SaleResponse{
					{ID: 3, Customer: dto.RefResponse{Name: "Sok"}, TotalQty: 1, TotalPrice: decimal.NewFromInt(5)},
				},
			},
		},
		TotalAmount: decimal.NewFromInt(35),
		TotalQty:    4,
	}

	b, err := excel.NewSalesWorkbook().SalesByDay(r)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(excel.SheetSales)
	require.NoError(t, err)
	// encabezado + 2 ventas + subtotal + 1 venta + subtotal + total
	require.Len(t, rows, 7)
	assert.Equal(t, "Date", rows[0][0])
	assert.Equal(t, "Sok", rows[1][2])
	assert.Equal(t, "Subtotal 2026-10-14", rows[3][0])
	assert.Equal(t, "3", rows[3][3])
	assert.Equal(t, "Total", rows[6][0])
	assert.Equal(t, "4", rows[6][3])
}

func TestSalesByDay_SinVentas(t *testing.T) {
	b, err := excel.NewSalesWorkbook().SalesByDay(dto.SalesByDayResponse{})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(excel.SheetSales)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}
