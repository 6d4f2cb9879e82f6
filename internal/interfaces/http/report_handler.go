package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ventas-pos/internal/application/dto"
	"github.com/jhoicas/ventas-pos/internal/application/report"
	"github.com/jhoicas/ventas-pos/pkg/logger"
)

const mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler reportes, estados de cuenta y documentos descargables.
type ReportHandler struct {
	uc  *report.ReportUseCase
	log *logger.Logger
}

func NewReportHandler(uc *report.ReportUseCase, log *logger.Logger) *ReportHandler {
	return &ReportHandler{uc: uc, log: log}
}

// SalesByDay godoc
// @Summary      Ventas agrupadas por día
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        startDate  query  string  false  "YYYY-MM-DD, por defecto el 1 del mes"
// @Param        endDate    query  string  false  "YYYY-MM-DD, por defecto hoy"
// @Param        page       query  int     false  "página (base 0)"
// @Param        size       query  int     false  "tamaño de página"
// @Success      200   {object}  dto.SalesByDayResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reports/sales-by-day [get]
func (h *ReportHandler) SalesByDay(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.SalesByDay(c.UserContext(), c.Query("startDate"), c.Query("endDate"), page)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Payments godoc
// @Summary      Abonos del mes en curso
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        search  query  string  false  "cliente o nota"
// @Success      200   {object}  dto.PaymentMonthResponse
// @Router       /api/reports/payments [get]
func (h *ReportHandler) Payments(c *fiber.Ctx) error {
	out, err := h.uc.PaymentsOfMonth(c.UserContext(), c.Query("search"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// CustomerStatement GET /api/customers/:id/statement
func (h *ReportHandler) CustomerStatement(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, h.log, err)
	}
	out, err := h.uc.CustomerStatement(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// SaleReceiptPDF godoc
// @Summary      Recibo de venta en PDF
// @Tags         reports
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id  path  int  true  "id de la venta"
// @Success      200
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/receipt.pdf [get]
func (h *ReportHandler) SaleReceiptPDF(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, h.log, err)
	}
	b, err := h.uc.SaleReceiptPDF(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return sendFile(c, "application/pdf", fmt.Sprintf("receipt-%d.pdf", id), b)
}

// CustomerStatementPDF GET /api/customers/:id/statement.pdf
func (h *ReportHandler) CustomerStatementPDF(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, h.log, err)
	}
	b, err := h.uc.CustomerStatementPDF(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return sendFile(c, "application/pdf", fmt.Sprintf("statement-%d.pdf", id), b)
}

// SalesWorkbook godoc
// @Summary      Ventas por día en Excel
// @Tags         reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Param        startDate  query  string  false  "YYYY-MM-DD"
// @Param        endDate    query  string  false  "YYYY-MM-DD"
// @Success      200
// @Router       /api/reports/sales.xlsx [get]
func (h *ReportHandler) SalesWorkbook(c *fiber.Ctx) error {
	b, err := h.uc.SalesWorkbook(c.UserContext(), c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return sendFile(c, mimeXLSX, "sales.xlsx", b)
}

func sendFile(c *fiber.Ctx, contentType, name string, b []byte) error {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", name))
	return c.Send(b)
}
