package report_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-pos/internal/application/dto"
	"github.com/jhoicas/ventas-pos/internal/application/report"
	"github.com/jhoicas/ventas-pos/internal/domain"
	"github.com/jhoicas/ventas-pos/internal/domain/entity"
	"github.com/jhoicas/ventas-pos/internal/domain/repository"
)

var ict = time.FixedZone("ICT", 7*3600)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ──────────────────────────────────────────────────────────────────────────────
// Dobles
// ──────────────────────────────────────────────────────────────────────────────

type salesStub struct {
	repository.SaleRepository
	all        []*entity.Sale
	pages      [][]*entity.Sale
	start, end time.Time
	pageCalls  int
}

func (s *salesStub) List(context.Context) ([]*entity.Sale, error) { return s.all, nil }

func (s *salesStub) GetByID(_ context.Context, id int64) (*entity.Sale, error) {
	for _, x := range s.all {
		if x.ID == id {
			return x, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *salesStub) ListByDate(_ context.Context, start, end time.Time, page repository.PageRequest) (*repository.Page[*entity.Sale], error) {
	s.start, s.end = start, end
	s.pageCalls++
	if page.Page >= len(s.pages) {
		return &repository.Page[*entity.Sale]{Page: page.Page, TotalPages: len(s.pages)}, nil
	}
	return &repository.Page[*entity.Sale]{
		Items: s.pages[page.Page], Page: page.Page, Size: page.Size,
		TotalPages: len(s.pages), TotalElements: int64(len(s.pages[page.Page])),
	}, nil
}

type paymentsStub struct {
	repository.PaymentRepository
	all []*entity.Payment
}

func (s *paymentsStub) List(context.Context) ([]*entity.Payment, error) { return s.all, nil }

func (s *paymentsStub) ListForReport(context.Context) ([]*entity.Payment, error) { return s.all, nil }

type customersStub struct {
	repository.CustomerRepository
	c *entity.Customer
}

func (s *customersStub) GetByID(_ context.Context, id int64) (*entity.Customer, error) {
	if s.c == nil || s.c.ID != id {
		return nil, domain.ErrNotFound
	}
	return s.c, nil
}

type renderStub struct {
	receipt   *dto.SaleResponse
	statement *dto.CustomerStatementResponse
	workbook  *dto.SalesByDayResponse
}

func (r *renderStub) SaleReceipt(s dto.SaleResponse) ([]byte, error) {
	r.receipt = &s
	return []byte("%PDF"), nil
}

func (r *renderStub) CustomerStatement(st dto.CustomerStatementResponse) ([]byte, error) {
	r.statement = &st
	return []byte("%PDF"), nil
}

func (r *renderStub) SalesByDay(d dto.SalesByDayResponse) ([]byte, error) {
	r.workbook = &d
	return []byte("PK"), nil
}

func sale(id int64, customer int64, at time.Time, total string, qty int) *entity.Sale {
	return &entity.Sale{
		ID:         id,
		Customer:   entity.CustomerRef{ID: customer, Name: "Sok"},
		Items:      []entity.SaleItem{{Product: entity.ProductRef{ID: 1, Name: "X"}, Qty: qty, Price: dec(total).Div(decimal.NewFromInt(int64(qty)))}},
		TotalPrice: dec(total),
		CreatedAt:  at,
	}
}

func newReport(sales *salesStub, payments *paymentsStub, customers *customersStub, r *renderStub) *report.ReportUseCase {
	return report.NewReportUseCase(report.Deps{
		Sales:     sales,
		Payments:  payments,
		Customers: customers,
		PDF:       r,
		Workbook:  r,
		Location:  ict,
		Now:       func() time.Time { return time.Date(2026, 10, 14, 3, 0, 0, 0, time.UTC) },
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Ventas por día
// ──────────────────────────────────────────────────────────────────────────────

func TestGroupByDay_ZonaYOrden(t *testing.T) {
	sales := []*entity.Sale{
		// 14/10 17:30 UTC ya es 15/10 en Phnom Penh
		sale(1, 7, time.Date(2026, 10, 14, 17, 30, 0, 0, time.UTC), "10.00", 2),
		sale(2, 7, time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC), "5.00", 1),
		sale(3, 7, time.Date(2026, 10, 15, 1, 0, 0, 0, time.UTC), "7.50", 3),
	}
	days := report.GroupByDay(sales, ict)

	require.Len(t, days, 2)
	assert.Equal(t, "2026-10-15", days[0].Date)
	assert.Equal(t, "១៥ - តុលា", days[0].Label)
	assert.Equal(t, "17.50", days[0].TotalAmount.StringFixed(2))
	assert.Equal(t, 5, days[0].TotalQty)
	assert.Len(t, days[0].Sales, 2)
	assert.Equal(t, "2026-10-14", days[1].Date)
	assert.Equal(t, "5.00", days[1].TotalAmount.StringFixed(2))
}

func TestSalesByDay_RangoPorDefecto(t *testing.T) {
	ss := &salesStub{pages: [][]*entity.Sale{{sale(1, 7, time.Date(2026, 10, 2, 3, 0, 0, 0, time.UTC), "4.00", 1)}}}
	uc := newReport(ss, &paymentsStub{}, &customersStub{}, &renderStub{})

	out, err := uc.SalesByDay(context.Background(), "", "", dto.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, "2026-10-01", out.StartDate)
	assert.Equal(t, "2026-10-14", out.EndDate)
	assert.Equal(t, "4.00", out.TotalAmount.StringFixed(2))
	assert.Equal(t, 1, out.Page.TotalPages)
}

func TestSalesByDay_FechasInvalidas(t *testing.T) {
	uc := newReport(&salesStub{}, &paymentsStub{}, &customersStub{}, &renderStub{})
	_, err := uc.SalesByDay(context.Background(), "10/01/2026", "", dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.SalesByDay(context.Background(), "2026-10-10", "2026-10-01", dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSalesWorkbook_RecorreTodasLasPaginas(t *testing.T) {
	at := time.Date(2026, 10, 3, 3, 0, 0, 0, time.UTC)
	ss := &salesStub{pages: [][]*entity.Sale{
		{sale(1, 7, at, "1.00", 1)},
		{sale(2, 7, at, "2.00", 1)},
	}}
	r := &renderStub{}
	uc := newReport(ss, &paymentsStub{}, &customersStub{}, r)

	b, err := uc.SalesWorkbook(context.Background(), "2026-10-01", "2026-10-31")
	require.NoError(t, err)
	assert.Equal(t, []byte("PK"), b)
	assert.Equal(t, 2, ss.pageCalls)
	require.NotNil(t, r.workbook)
	assert.Equal(t, "3.00", r.workbook.TotalAmount.StringFixed(2))
}

// ──────────────────────────────────────────────────────────────────────────────
// Abonos y estado de cuenta
// ──────────────────────────────────────────────────────────────────────────────

func TestPaymentsOfMonth_FiltraYOrdena(t *testing.T) {
	ps := &paymentsStub{all: []*entity.Payment{
		{ID: 1, Customer: entity.CustomerRef{ID: 7, Name: "Sok Dara"}, Amount: dec("5"), PaymentDate: time.Date(2026, 10, 2, 3, 0, 0, 0, time.UTC)},
		{ID: 2, Customer: entity.CustomerRef{ID: 8, Name: "Chan"}, Amount: dec("7"), PaymentDate: time.Date(2026, 10, 9, 3, 0, 0, 0, time.UTC), Remark: "via sok"},
		{ID: 3, Customer: entity.CustomerRef{ID: 7, Name: "Sok Dara"}, Amount: dec("9"), PaymentDate: time.Date(2026, 9, 30, 3, 0, 0, 0, time.UTC)},
		// 30/09 18:00 UTC ya es octubre en Phnom Penh
		{ID: 4, Customer: entity.CustomerRef{ID: 9, Name: "Vanna"}, Amount: dec("1"), PaymentDate: time.Date(2026, 9, 30, 18, 0, 0, 0, time.UTC)},
	}}
	uc := newReport(&salesStub{}, ps, &customersStub{}, &renderStub{})

	out, err := uc.PaymentsOfMonth(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, out.Items, 3)
	assert.Equal(t, []int64{2, 1, 4}, []int64{out.Items[0].ID, out.Items[1].ID, out.Items[2].ID})
	assert.Equal(t, "13.00", out.TotalAmount.StringFixed(2))

	out, err = uc.PaymentsOfMonth(context.Background(), "SOK")
	require.NoError(t, err)
	require.Len(t, out.Items, 2)
	assert.Equal(t, "12.00", out.TotalAmount.StringFixed(2))
	assert.Equal(t, 10, out.Month)
}

func TestCustomerStatement(t *testing.T) {
	ss := &salesStub{all: []*entity.Sale{
		sale(1, 7, time.Date(2026, 10, 1, 3, 0, 0, 0, time.UTC), "10.00", 1),
		sale(2, 8, time.Date(2026, 10, 2, 3, 0, 0, 0, time.UTC), "99.00", 1),
		sale(3, 7, time.Date(2026, 10, 5, 3, 0, 0, 0, time.UTC), "20.00", 2),
	}}
	ps := &paymentsStub{all: []*entity.Payment{
		{ID: 1, Customer: entity.CustomerRef{ID: 7}, Amount: dec("4"), PaymentDate: time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC)},
		{ID: 2, Customer: entity.CustomerRef{ID: 8}, Amount: dec("50"), PaymentDate: time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC)},
	}}
	cs := &customersStub{c: &entity.Customer{ID: 7, Name: "Sok", TotalDebt: dec("26.00")}}
	r := &renderStub{}
	uc := newReport(ss, ps, cs, r)

	st, err := uc.CustomerStatement(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, st.Sales, 2)
	assert.Equal(t, int64(3), st.Sales[0].ID)
	assert.Equal(t, "30.00", st.TotalSales.StringFixed(2))
	assert.Equal(t, "4.00", st.TotalPayments.StringFixed(2))
	assert.Equal(t, "26.00", st.TotalDebt.StringFixed(2))

	_, err = uc.CustomerStatementPDF(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Sok", r.statement.Customer.Name)

	_, err = uc.CustomerStatement(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSaleReceiptPDF(t *testing.T) {
	ss := &salesStub{all: []*entity.Sale{sale(5, 7, time.Now(), "12.00", 3)}}
	r := &renderStub{}
	uc := newReport(ss, &paymentsStub{}, &customersStub{}, r)

	b, err := uc.SaleReceiptPDF(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), b)
	assert.Equal(t, 3, r.receipt.TotalQty)

	_, err = uc.SaleReceiptPDF(context.Background(), 6)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
