package report

import "github.com/jhoicas/ventas-pos/internal/application/dto"

// PDFRenderer genera documentos imprimibles. Implementación en infrastructure/pdf.
type PDFRenderer interface {
	SaleReceipt(sale dto.SaleResponse) ([]byte, error)
	CustomerStatement(st dto.CustomerStatementResponse) ([]byte, error)
}

// WorkbookRenderer genera planillas. Implementación en infrastructure/excel.
type WorkbookRenderer interface {
	SalesByDay(r dto.SalesByDayResponse) ([]byte, error)
}
