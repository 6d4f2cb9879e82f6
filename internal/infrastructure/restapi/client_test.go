package restapi_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-pos/internal/domain"
	"github.com/jhoicas/ventas-pos/internal/domain/entity"
	"github.com/jhoicas/ventas-pos/internal/domain/repository"
	"github.com/jhoicas/ventas-pos/internal/infrastructure/restapi"
)

// ──────────────────────────────────────────────────────────────────────────────
// Servidor de pruebas
// ──────────────────────────────────────────────────────────────────────────────

type recorded struct {
	Method string
	Path   string
	Query  string
	Header http.Header
	Body   map[string]any
}

type stubAPI struct {
	mu       sync.Mutex
	requests []recorded
	routes   map[string]func(w http.ResponseWriter, r *http.Request)
}

func newStub(t *testing.T) (*stubAPI, *restapi.Client) {
	t.Helper()
	s := &stubAPI{routes: map[string]func(w http.ResponseWriter, r *http.Request){}}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := recorded{Method: r.Method, Path: r.URL.Path, Query: r.URL.RawQuery, Header: r.Header.Clone()}
		if raw, _ := io.ReadAll(r.Body); len(raw) > 0 {
			_ = json.Unmarshal(raw, &rec.Body)
		}
		s.mu.Lock()
		s.requests = append(s.requests, rec)
		h, ok := s.routes[r.Method+" "+r.URL.Path]
		s.mu.Unlock()
		if !ok {
			http.NotFound(w, r)
			return
		}
		h(w, r)
	}))
	t.Cleanup(srv.Close)

	loc, err := time.LoadLocation("Asia/Phnom_Penh")
	require.NoError(t, err)
	return s, restapi.NewClient(srv.URL+"/api", 2*time.Second, loc, nil)
}

func (s *stubAPI) on(method, path string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routes[method+" "+path] = func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

func (s *stubAPI) last() recorded {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests[len(s.requests)-1]
}

func d(v string) decimal.Decimal { return decimal.RequireFromString(v) }

// ──────────────────────────────────────────────────────────────────────────────
// Productos y clientes
// ──────────────────────────────────────────────────────────────────────────────

func TestProductRepo_ListYGet(t *testing.T) {
	stub, client := newStub(t)
	stub.on(http.MethodGet, "/api/products", 200, `[{"id":1,"name":"Coca","price":1.5,"purchasePrice":1.1,"productType":"drink","productColor":"red","stock":24}]`)
	stub.on(http.MethodGet, "/api/products/1", 200, `{"id":1,"name":"Coca","price":"1.50","purchasePrice":1.1,"productType":"drink","stock":24}`)
	repo := restapi.NewProductRepository(client)

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "drink", list[0].Category)
	assert.Equal(t, "red", list[0].Color)
	assert.Equal(t, 24, list[0].Stock)
	assert.True(t, list[0].Price.Equal(d("1.5")))

	p, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, p.PurchasePrice.Equal(d("1.1")))
}

func TestProductRepo_UpdateEnviaProductType(t *testing.T) {
	stub, client := newStub(t)
	stub.on(http.MethodPut, "/api/products/3", 200, `{"id":3,"name":"Arroz","price":2,"purchasePrice":1,"productType":"food","stock":5}`)

	_, err := restapi.NewProductRepository(client).Update(context.Background(), &entity.Product{
		ID: 3, Name: "Arroz", Category: "food", Price: d("2"), PurchasePrice: d("1"), Stock: 5,
	})
	require.NoError(t, err)

	req := stub.last()
	assert.Equal(t, "food", req.Body["productType"])
	assert.Equal(t, 2.0, req.Body["price"], "los montos viajan como números JSON")
	assert.NotContains(t, req.Body, "id")
}

func TestCustomerRepo_NoEnviaDeuda(t *testing.T) {
	stub, client := newStub(t)
	stub.on(http.MethodPost, "/api/customers", 201, `{"id":9,"name":"Dara","phone":"012","totalDebt":0}`)

	c, err := restapi.NewCustomerRepository(client).Create(context.Background(), &entity.Customer{Name: "Dara", Phone: "012", TotalDebt: d("99")})
	require.NoError(t, err)
	assert.Equal(t, int64(9), c.ID)
	assert.NotContains(t, stub.last().Body, "totalDebt")
}

// ──────────────────────────────────────────────────────────────────────────────
// Errores
// ──────────────────────────────────────────────────────────────────────────────

func TestClient_MapeoDeErrores(t *testing.T) {
	stub, client := newStub(t)
	stub.on(http.MethodGet, "/api/customers/1", 404, `{"message":"not found"}`)
	stub.on(http.MethodGet, "/api/customers/2", 400, `bad`)
	stub.on(http.MethodGet, "/api/customers/3", 409, ``)
	stub.on(http.MethodGet, "/api/customers/4", 500, `boom`)
	repo := restapi.NewCustomerRepository(client)

	cases := map[int64]error{1: domain.ErrNotFound, 2: domain.ErrInvalidInput, 3: domain.ErrConflict, 4: domain.ErrUpstream}
	for id, want := range cases {
		_, err := repo.GetByID(context.Background(), id)
		assert.ErrorIs(t, err, want, "id %d", id)
	}
}

func TestClient_FalloDeRedEsUpstream(t *testing.T) {
	client := restapi.NewClient("http://127.0.0.1:1/api", 500*time.Millisecond, time.UTC, nil)
	_, err := restapi.NewProductRepository(client).List(context.Background())
	assert.ErrorIs(t, err, domain.ErrUpstream)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ventas
// ──────────────────────────────────────────────────────────────────────────────

func TestSaleRepo_CreateCuerpoExacto(t *testing.T) {
	stub, client := newStub(t)
	stub.on(http.MethodPost, "/api/sales", 201,
		`{"id":55,"customer":{"id":4,"name":"Sok"},"items":[{"product":{"id":7,"name":"Coca"},"qty":5,"price":5}],"totalPrice":25,"paidAmount":10,"debt":15,"createdAt":"2026-10-05T09:30:00"}`)

	sale, err := restapi.NewSaleRepository(client).Create(context.Background(), entity.SaleDraft{
		CustomerID: 4,
		Items:      []entity.SaleDraftItem{{ProductID: 7, Qty: 5, Price: d("5.00")}},
		PaidAmount: d("10.00"),
		Remark:     "efectivo",
	}, "key-123")
	require.NoError(t, err)

	req := stub.last()
	assert.Equal(t, "key-123", req.Header.Get(restapi.HeaderIdempotencyKey))
	assert.Equal(t, map[string]any{"id": 4.0}, req.Body["customer"])
	assert.Equal(t, 10.0, req.Body["paidAmount"])
	assert.Equal(t, "efectivo", req.Body["remark"])
	items := req.Body["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, map[string]any{"product": map[string]any{"id": 7.0}, "qty": 5.0, "price": 5.0}, items[0],
		"las líneas no llevan total")

	assert.Equal(t, int64(55), sale.ID)
	assert.True(t, sale.Debt.Equal(d("15")))
	assert.Equal(t, "Sok", sale.Customer.Name)
	assert.Equal(t, 9, sale.CreatedAt.Hour(), "fecha sin offset en la zona configurada")
	assert.Equal(t, "Asia/Phnom_Penh", sale.CreatedAt.Location().String())
}

func TestSaleRepo_UpdateSinClave(t *testing.T) {
	stub, client := newStub(t)
	stub.on(http.MethodPut, "/api/sales/55", 200,
		`{"id":55,"customer":{"id":4},"items":[],"totalPrice":25,"paidAmount":25,"debt":0}`)

	sale, err := restapi.NewSaleRepository(client).Update(context.Background(), 55, entity.SaleDraft{
		CustomerID: 4,
		Items:      []entity.SaleDraftItem{{ProductID: 7, Qty: 5, Price: d("5.00")}},
		PaidAmount: d("25.00"),
	})
	require.NoError(t, err)

	req := stub.last()
	assert.Equal(t, http.MethodPut, req.Method)
	assert.Empty(t, req.Header.Get(restapi.HeaderIdempotencyKey))
	assert.NotContains(t, req.Body, "remark")
	assert.True(t, sale.Debt.IsZero())
}

func TestSaleRepo_ListByDate(t *testing.T) {
	stub, client := newStub(t)
	stub.on(http.MethodGet, "/api/sales/by-date", 200,
		`{"content":[{"id":1,"customer":{"id":1},"items":[],"totalPrice":3,"paidAmount":3,"debt":0,"createdAt":"2026-10-01T08:00:00+07:00"}],"totalElements":1,"totalPages":1,"number":0,"size":20}`)

	start := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 10, 31, 0, 0, 0, 0, time.UTC)
	page, err := restapi.NewSaleRepository(client).ListByDate(context.Background(), start, end, repository.PageRequest{Page: 0, Size: 20})
	require.NoError(t, err)

	assert.Equal(t, "endDate=2026-10-31&page=0&size=20&startDate=2026-10-01", stub.last().Query)
	require.Len(t, page.Items, 1)
	assert.Equal(t, int64(1), page.TotalElements)
	assert.Equal(t, 20, page.Size)
}

func TestSaleRepo_ListCurrentMonthNormalizaPagina(t *testing.T) {
	stub, client := newStub(t)
	stub.on(http.MethodGet, "/api/sales/current-month-dto/month", 200, `{"content":[],"totalElements":0,"totalPages":0,"number":0,"size":10}`)

	_, err := restapi.NewSaleRepository(client).ListCurrentMonth(context.Background(), repository.PageRequest{Page: -1})
	require.NoError(t, err)
	assert.Equal(t, "page=0&size=10", stub.last().Query)
}

// ──────────────────────────────────────────────────────────────────────────────
// Compras y abonos
// ──────────────────────────────────────────────────────────────────────────────

func TestPurchaseRepo_ListByMonthArregloOPagina(t *testing.T) {
	for name, body := range map[string]string{
		"arreglo": `[{"id":1,"supplier":"Mayorista","items":[],"totalPrice":10}]`,
		"página":  `{"content":[{"id":1,"supplier":"Mayorista","items":[],"totalPrice":10}]}`,
	} {
		t.Run(name, func(t *testing.T) {
			stub, client := newStub(t)
			stub.on(http.MethodGet, "/api/purchases/filter", 200, body)

			list, err := restapi.NewPurchaseRepository(client).ListByMonth(context.Background(), 10, 2026)
			require.NoError(t, err)
			require.Len(t, list, 1)
			assert.Equal(t, "Mayorista", list[0].Supplier)
			assert.Equal(t, "month=10&year=2026", stub.last().Query)
		})
	}
}

func TestPurchaseRepo_CreateFormateaFechaConOffset(t *testing.T) {
	stub, client := newStub(t)
	stub.on(http.MethodPost, "/api/purchases", 201, `{"id":3,"supplier":"Mayorista","items":[],"totalPrice":8}`)

	_, err := restapi.NewPurchaseRepository(client).Create(context.Background(), &entity.Purchase{
		Supplier:   "Mayorista",
		Items:      []entity.PurchaseItem{{Product: entity.ProductRef{ID: 2}, Quantity: 4, Price: d("2"), LineTotal: d("8")}},
		TotalPrice: d("8"),
		CreatedAt:  time.Date(2026, 10, 5, 3, 0, 0, 0, time.UTC),
	}, "k1")
	require.NoError(t, err)

	req := stub.last()
	assert.Equal(t, "2026-10-05T10:00:00+07:00", req.Body["createdAt"])
	assert.Equal(t, 8.0, req.Body["totalPrice"])
	items := req.Body["items"].([]any)
	assert.Equal(t, 8.0, items[0].(map[string]any)["lineTotal"])
	assert.Equal(t, "k1", req.Header.Get(restapi.HeaderIdempotencyKey))
}

func TestPurchaseRepo_Items(t *testing.T) {
	stub, client := newStub(t)
	stub.on(http.MethodGet, "/api/purchases/3/items", 200,
		`{"content":[{"product":{"id":2,"name":"Arroz"},"quantity":4,"price":2,"lineTotal":8}],"totalElements":1,"totalPages":1,"number":0,"size":10}`)

	page, err := restapi.NewPurchaseRepository(client).Items(context.Background(), 3, repository.PageRequest{})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Arroz", page.Items[0].Product.Name)
	assert.True(t, page.Items[0].LineTotal.Equal(d("8")))
}

func TestPaymentRepo_ListForReport(t *testing.T) {
	stub, client := newStub(t)
	stub.on(http.MethodGet, "/api/payments/reports", 200,
		`[{"id":1,"customer":{"id":4,"name":"Sok"},"amount":12.5,"paymentDate":"2026-10-02T10:00:00","remark":"abono"}]`)

	list, err := restapi.NewPaymentRepository(client).ListForReport(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Sok", list[0].Customer.Name)
	assert.True(t, list[0].Amount.Equal(d("12.5")))
	assert.Equal(t, 2, list[0].PaymentDate.Day())
}

func TestPaymentRepo_Delete(t *testing.T) {
	stub, client := newStub(t)
	stub.on(http.MethodDelete, "/api/payments/8", 204, ``)

	require.NoError(t, restapi.NewPaymentRepository(client).Delete(context.Background(), 8))
	assert.Equal(t, http.MethodDelete, stub.last().Method)
}
