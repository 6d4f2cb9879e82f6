// Package report arma los reportes y listados de la PWA sobre los datos de la API remota:
// ventas por día, abonos del mes, estado de cuenta del cliente y sus exportaciones.
package report

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ventas-pos/internal/application/dto"
	"github.com/jhoicas/ventas-pos/internal/domain"
	"github.com/jhoicas/ventas-pos/internal/domain/entity"
	"github.com/jhoicas/ventas-pos/internal/domain/repository"
	"github.com/jhoicas/ventas-pos/pkg/format"
)

const dateLayout = "2006-01-02"

// exportPageSize y exportMaxPages acotan lo que se descarga para una planilla.
const (
	exportPageSize = 100
	exportMaxPages = 50
)

// Deps dependencias del caso de uso.
type Deps struct {
	Sales     repository.SaleRepository
	Payments  repository.PaymentRepository
	Customers repository.CustomerRepository
	PDF       PDFRenderer
	Workbook  WorkbookRenderer
	Location  *time.Location
	Now       func() time.Time
}

// ReportUseCase reportes de solo lectura.
type ReportUseCase struct {
	sales     repository.SaleRepository
	payments  repository.PaymentRepository
	customers repository.CustomerRepository
	pdf       PDFRenderer
	workbook  WorkbookRenderer
	loc       *time.Location
	now       func() time.Time
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(d Deps) *ReportUseCase {
	uc := &ReportUseCase{
		sales:     d.Sales,
		payments:  d.Payments,
		customers: d.Customers,
		pdf:       d.PDF,
		workbook:  d.Workbook,
		loc:       d.Location,
		now:       d.Now,
	}
	if uc.loc == nil {
		uc.loc = time.UTC
	}
	if uc.now == nil {
		uc.now = time.Now
	}
	return uc
}

// SalesByDay ventas entre startDate y endDate (YYYY-MM-DD, inclusivas) agrupadas por día.
// Sin fechas toma desde el primer día del mes hasta hoy.
func (uc *ReportUseCase) SalesByDay(ctx context.Context, startDate, endDate string, page dto.PageRequest) (*dto.SalesByDayResponse, error) {
	start, end, err := uc.dateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	p, err := uc.sales.ListByDate(ctx, start, end, repository.PageRequest{Page: page.Page, Size: page.Size})
	if err != nil {
		return nil, err
	}
	out := uc.byDay(start, end, p.Items)
	out.Page = dto.FromPage(p)
	return out, nil
}

// SalesWorkbook planilla de ventas por día para el rango completo (todas las páginas).
func (uc *ReportUseCase) SalesWorkbook(ctx context.Context, startDate, endDate string) ([]byte, error) {
	start, end, err := uc.dateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	var all []*entity.Sale
	for page := 0; page < exportMaxPages; page++ {
		p, err := uc.sales.ListByDate(ctx, start, end, repository.PageRequest{Page: page, Size: exportPageSize})
		if err != nil {
			return nil, err
		}
		all = append(all, p.Items...)
		if page+1 >= p.TotalPages || len(p.Items) == 0 {
			break
		}
	}
	return uc.workbook.SalesByDay(*uc.byDay(start, end, all))
}

func (uc *ReportUseCase) byDay(start, end time.Time, sales []*entity.Sale) *dto.SalesByDayResponse {
	days := GroupByDay(sales, uc.loc)
	out := &dto.SalesByDayResponse{
		StartDate:   start.Format(dateLayout),
		EndDate:     end.Format(dateLayout),
		Days:        days,
		TotalAmount: decimal.Zero,
	}
	for _, d := range days {
		out.TotalAmount = out.TotalAmount.Add(d.TotalAmount)
		out.TotalQty += d.TotalQty
	}
	return out
}

// GroupByDay agrupa ventas por día calendario en loc, del día más reciente al más antiguo.
// Dentro de un día las ventas conservan el orden recibido.
func GroupByDay(sales []*entity.Sale, loc *time.Location) []dto.SalesDayGroup {
	index := map[string]int{}
	groups := []dto.SalesDayGroup{}
	for _, s := range sales {
		local := s.CreatedAt.In(loc)
		key := local.Format(dateLayout)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, dto.SalesDayGroup{
				Date:        key,
				Label:       format.KhmerDayMonth(local),
				TotalAmount: decimal.Zero,
			})
		}
		g := &groups[i]
		g.TotalAmount = g.TotalAmount.Add(s.TotalPrice)
		g.TotalQty += s.TotalQty()
		g.Sales = append(g.Sales, dto.FromSale(s))
	}
	sort.SliceStable(groups, func(a, b int) bool { return groups[a].Date > groups[b].Date })
	return groups
}

// PaymentsOfMonth abonos del mes actual (en la zona configurada), filtrados por nombre de
// cliente o nota y ordenados del más reciente al más antiguo.
func (uc *ReportUseCase) PaymentsOfMonth(ctx context.Context, search string) (*dto.PaymentMonthResponse, error) {
	list, err := uc.payments.ListForReport(ctx)
	if err != nil {
		return nil, err
	}
	now := uc.now().In(uc.loc)
	q := strings.ToLower(strings.TrimSpace(search))

	var picked []*entity.Payment
	for _, p := range list {
		d := p.PaymentDate.In(uc.loc)
		if d.Year() != now.Year() || d.Month() != now.Month() {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(p.Customer.Name), q) && !strings.Contains(strings.ToLower(p.Remark), q) {
			continue
		}
		picked = append(picked, p)
	}
	sort.SliceStable(picked, func(a, b int) bool { return picked[a].PaymentDate.After(picked[b].PaymentDate) })

	out := &dto.PaymentMonthResponse{
		Month:       int(now.Month()),
		Year:        now.Year(),
		Search:      strings.TrimSpace(search),
		Items:       make([]dto.PaymentResponse, 0, len(picked)),
		TotalAmount: decimal.Zero,
	}
	for _, p := range picked {
		out.Items = append(out.Items, dto.FromPayment(p))
		out.TotalAmount = out.TotalAmount.Add(p.Amount)
	}
	return out, nil
}

// CustomerStatement cliente con sus abonos y ventas, más recientes primero.
func (uc *ReportUseCase) CustomerStatement(ctx context.Context, customerID int64) (*dto.CustomerStatementResponse, error) {
	c, err := uc.customers.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	payments, err := uc.payments.List(ctx)
	if err != nil {
		return nil, err
	}
	sales, err := uc.sales.List(ctx)
	if err != nil {
		return nil, err
	}

	var ownPayments []*entity.Payment
	for _, p := range payments {
		if p.Customer.ID == c.ID {
			ownPayments = append(ownPayments, p)
		}
	}
	sort.SliceStable(ownPayments, func(a, b int) bool { return ownPayments[a].PaymentDate.After(ownPayments[b].PaymentDate) })

	var ownSales []*entity.Sale
	for _, s := range sales {
		if s.Customer.ID == c.ID {
			ownSales = append(ownSales, s)
		}
	}
	sort.SliceStable(ownSales, func(a, b int) bool { return ownSales[a].CreatedAt.After(ownSales[b].CreatedAt) })

	out := &dto.CustomerStatementResponse{
		Customer:      dto.FromCustomer(c),
		Payments:      make([]dto.PaymentResponse, 0, len(ownPayments)),
		TotalPayments: decimal.Zero,
		TotalDebt:     c.TotalDebt,
	}
	for _, p := range ownPayments {
		out.Payments = append(out.Payments, dto.FromPayment(p))
		out.TotalPayments = out.TotalPayments.Add(p.Amount)
	}
	out.Sales, out.TotalSales = dto.FromSales(ownSales)
	return out, nil
}

// SaleReceiptPDF recibo imprimible de una venta.
func (uc *ReportUseCase) SaleReceiptPDF(ctx context.Context, saleID int64) ([]byte, error) {
	s, err := uc.sales.GetByID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	return uc.pdf.SaleReceipt(dto.FromSale(s))
}

// CustomerStatementPDF estado de cuenta imprimible.
func (uc *ReportUseCase) CustomerStatementPDF(ctx context.Context, customerID int64) ([]byte, error) {
	st, err := uc.CustomerStatement(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return uc.pdf.CustomerStatement(*st)
}

func (uc *ReportUseCase) dateRange(startDate, endDate string) (time.Time, time.Time, error) {
	now := uc.now().In(uc.loc)
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, uc.loc)
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, uc.loc)
	var err error
	if startDate != "" {
		if start, err = time.ParseInLocation(dateLayout, startDate, uc.loc); err != nil {
			return time.Time{}, time.Time{}, domain.NewValidationError("startDate", domain.ReasonInvalidFormat)
		}
	}
	if endDate != "" {
		if end, err = time.ParseInLocation(dateLayout, endDate, uc.loc); err != nil {
			return time.Time{}, time.Time{}, domain.NewValidationError("endDate", domain.ReasonInvalidFormat)
		}
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("rango %s..%s: %w", start.Format(dateLayout), end.Format(dateLayout),
			domain.NewValidationError("endDate", domain.ReasonInvalidFormat))
	}
	return start, end, nil
}
