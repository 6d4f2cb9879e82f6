// Package excel exporta el reporte de ventas por día a un libro .xlsx con excelize.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/ventas-pos/internal/application/dto"
	"github.com/jhoicas/ventas-pos/internal/application/report"
)

// SheetSales nombre de la hoja del reporte.
const SheetSales = "Sales"

var salesHeader = []string{"Date", "Sale #", "Customer", "Qty", "Total", "Paid", "Debt", "Remark"}

var _ report.WorkbookRenderer = (*SalesWorkbook)(nil)

// SalesWorkbook implementa report.WorkbookRenderer.
type SalesWorkbook struct{}

func NewSalesWorkbook() *SalesWorkbook { return &SalesWorkbook{} }

type styles struct {
	header, money, subtotal, subtotalMoney int
}

func newStyles(f *excelize.File) (styles, error) {
	var s styles
	var err error
	fill := excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1}
	if s.header, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#00467F"},
		Fill: fill,
	}); err != nil {
		return s, err
	}
	if s.money, err = f.NewStyle(&excelize.Style{NumFmt: 4}); err != nil {
		return s, err
	}
	if s.subtotal, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err != nil {
		return s, err
	}
	s.subtotalMoney, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}, NumFmt: 4})
	return s, err
}

// SalesByDay escribe una fila por venta y un subtotal por día; al final el total del rango.
func (w *SalesWorkbook) SalesByDay(r dto.SalesByDayResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetSales); err != nil {
		return nil, fmt.Errorf("excel: renombrar hoja: %w", err)
	}
	st, err := newStyles(f)
	if err != nil {
		return nil, fmt.Errorf("excel: estilos: %w", err)
	}

	rowN := 1
	set := func(col int, v any, style int) error {
		cell, err := excelize.CoordinatesToCellName(col, rowN)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(SheetSales, cell, v); err != nil {
			return err
		}
		if style != 0 {
			return f.SetCellStyle(SheetSales, cell, cell, style)
		}
		return nil
	}

	for i, h := range salesHeader {
		if err := set(i+1, h, st.header); err != nil {
			return nil, fmt.Errorf("excel: encabezado: %w", err)
		}
	}
	rowN++

	for _, day := range r.Days {
		for _, s := range day.Sales {
			cells := []struct {
				v     any
				style int
			}{
				{day.Date, 0},
				{s.ID, 0},
				{s.Customer.Name, 0},
				{s.TotalQty, 0},
				{s.TotalPrice.InexactFloat64(), st.money},
				{s.PaidAmount.InexactFloat64(), st.money},
				{s.Debt.InexactFloat64(), st.money},
				{s.Remark, 0},
			}
			for i, c := range cells {
				if err := set(i+1, c.v, c.style); err != nil {
					return nil, fmt.Errorf("excel: venta %d: %w", s.ID, err)
				}
			}
			rowN++
		}
		if err := subtotalRow(set, "Subtotal "+day.Date, day.TotalQty, day.TotalAmount.InexactFloat64(), st); err != nil {
			return nil, fmt.Errorf("excel: subtotal %s: %w", day.Date, err)
		}
		rowN++
	}

	if err := subtotalRow(set, "Total", r.TotalQty, r.TotalAmount.InexactFloat64(), st); err != nil {
		return nil, fmt.Errorf("excel: total: %w", err)
	}

	if err := f.SetColWidth(SheetSales, "A", "A", 14); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(SheetSales, "C", "C", 24); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(SheetSales, "E", "G", 12); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(SheetSales, "H", "H", 30); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}

func subtotalRow(set func(int, any, int) error, label string, qty int, amount float64, st styles) error {
	if err := set(1, label, st.subtotal); err != nil {
		return err
	}
	if err := set(4, qty, st.subtotal); err != nil {
		return err
	}
	return set(5, amount, st.subtotalMoney)
}
