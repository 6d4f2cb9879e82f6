package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/ventas-pos/internal/application/auth"
	"github.com/jhoicas/ventas-pos/internal/application/checkout"
	"github.com/jhoicas/ventas-pos/internal/application/dto"
	"github.com/jhoicas/ventas-pos/internal/application/report"
	"github.com/jhoicas/ventas-pos/internal/application/usecase"
	"github.com/jhoicas/ventas-pos/internal/infrastructure/excel"
	"github.com/jhoicas/ventas-pos/internal/infrastructure/memory"
	"github.com/jhoicas/ventas-pos/internal/infrastructure/pdf"
	"github.com/jhoicas/ventas-pos/internal/infrastructure/restapi"
	apphttp "github.com/jhoicas/ventas-pos/internal/interfaces/http"
	"github.com/jhoicas/ventas-pos/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUsername  = "admin"
	testPassword  = "s3cret-pass"
)

// upstream API de contabilidad simulada con httptest.
type upstream struct {
	mu     sync.Mutex
	routes map[string]func(w http.ResponseWriter, r *http.Request)
	calls  []string
	keys   []string
}

func (u *upstream) on(method, path string, status int, body string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.routes[method+" "+path] = func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

func (u *upstream) count(call string) int {
	u.mu.Lock()
	defer u.mu.Unlock()
	n := 0
	for _, c := range u.calls {
		if c == call {
			n++
		}
	}
	return n
}

type testApp struct {
	app *fiber.App
	up  *upstream
}

// newTestApp arma la aplicación completa contra una API remota simulada.
func newTestApp(t *testing.T) *testApp {
	t.Helper()
	up := &upstream{routes: map[string]func(w http.ResponseWriter, r *http.Request){}}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		call := r.Method + " " + r.URL.Path
		up.mu.Lock()
		up.calls = append(up.calls, call)
		if k := r.Header.Get("Idempotency-Key"); k != "" {
			up.keys = append(up.keys, k)
		}
		h, ok := up.routes[call]
		up.mu.Unlock()
		if !ok {
			http.NotFound(w, r)
			return
		}
		h(w, r)
	}))
	t.Cleanup(srv.Close)

	loc := time.FixedZone("ICT", 7*3600)
	client := restapi.NewClient(srv.URL+"/api", 2*time.Second, loc, nil)
	products := restapi.NewProductRepository(client)
	customers := restapi.NewCustomerRepository(client)
	sales := restapi.NewSaleRepository(client)
	purchases := restapi.NewPurchaseRepository(client)
	payments := restapi.NewPaymentRepository(client)

	sessions := memory.NewSessionStore(time.Now)
	checkoutUC := checkout.NewCheckoutUseCase(checkout.Deps{
		Products:  products,
		Customers: customers,
		Sales:     sales,
		Purchases: purchases,
		Ledger:    memory.NewSubmissionLedger(),
		Carts:     memory.NewCartStore(),
		IdleTTL:   time.Hour,
		Location:  loc,
	})

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	authUC := auth.NewAuthUseCase(sessions, checkoutUC,
		auth.Operator{Username: testUsername, PasswordHash: string(hash), Role: "admin"},
		auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: 60, Issuer: "ventas-pos-test"},
	)

	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(logger.Nop())})
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:     authUC,
		CheckoutUC: checkoutUC,
		ProductUC:  usecase.NewProductUseCase(products),
		CustomerUC: usecase.NewCustomerUseCase(customers),
		PaymentUC:  usecase.NewPaymentUseCase(payments, loc),
		SaleUC:     usecase.NewSaleUseCase(sales),
		PurchaseUC: usecase.NewPurchaseUseCase(purchases, loc),
		ReportUC: report.NewReportUseCase(report.Deps{
			Sales:     sales,
			Payments:  payments,
			Customers: customers,
			PDF:       pdf.NewMarotoPDFGenerator("Test Shop", loc),
			Workbook:  excel.NewSalesWorkbook(),
			Location:  loc,
		}),
		Sessions:    sessions,
		JWTSecret:   testJWTSecret,
		DefaultLang: "km",
	})
	return &testApp{app: app, up: up}
}

// do lanza la petición; body se serializa como JSON si no es nil.
func (a *testApp) do(t *testing.T, method, path, token string, body any, headers ...string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func (a *testApp) login(t *testing.T) string {
	t.Helper()
	resp := a.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Username: testUsername, Password: testPassword})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.LoginResponse
	decode(t, resp, &out)
	require.NotEmpty(t, out.Token)
	return out.Token
}

func decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}
