package http_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/ventas-pos/internal/application/dto"
	pkgjwt "github.com/jhoicas/ventas-pos/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Login / logout
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesInvalidas(t *testing.T) {
	a := newTestApp(t)
	resp := a.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Username: testUsername, Password: "nope"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var body dto.ErrorResponse
	decode(t, resp, &body)
	assert.Equal(t, "INVALID_CREDENTIALS", body.Code)
	assert.Equal(t, "ឈ្មោះអ្នកប្រើ ឬពាក្យសម្ងាត់មិនត្រឹមត្រូវ!", body.Message, "sin Accept-Language el mensaje sale en jemer")
}

func TestLogin_MensajeEnIngles(t *testing.T) {
	a := newTestApp(t)
	resp := a.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Username: testUsername, Password: "nope"},
		"Accept-Language", "en-US,en;q=0.9")

	var body dto.ErrorResponse
	decode(t, resp, &body)
	assert.Equal(t, "Invalid username or password", body.Message)
}

func TestLogin_CamposVacios(t *testing.T) {
	a := newTestApp(t)
	resp := a.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinToken(t *testing.T) {
	a := newTestApp(t)
	resp := a.do(t, http.MethodGet, "/api/carts/abc", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var body dto.ErrorResponse
	decode(t, resp, &body)
	assert.Equal(t, "MISSING_TOKEN", body.Code)
}

func TestAuthMiddleware_TokenInvalido(t *testing.T) {
	a := newTestApp(t)
	resp := a.do(t, http.MethodGet, "/api/carts/abc", "not-a-jwt", nil)

	var body dto.ErrorResponse
	decode(t, resp, &body)
	assert.Equal(t, "INVALID_TOKEN", body.Code)
}

func TestAuthMiddleware_TokenDeSesionInexistente(t *testing.T) {
	a := newTestApp(t)
	tok, err := pkgjwt.Generate(testJWTSecret, "ghost-session", testUsername, "admin", "ventas-pos-test", 60)
	assert.NoError(t, err)

	resp := a.do(t, http.MethodGet, "/api/carts/abc", tok, nil)
	var body dto.ErrorResponse
	decode(t, resp, &body)
	assert.Equal(t, "SESSION_EXPIRED", body.Code)
}

func TestLogout_CierraSesionYDescartaCarritos(t *testing.T) {
	a := newTestApp(t)
	tok := a.login(t)

	resp := a.do(t, http.MethodPost, "/api/carts", tok, dto.StartCartRequest{Kind: "sale"})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = a.do(t, http.MethodPost, "/api/auth/logout", tok, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.LogoutResponse
	decode(t, resp, &out)
	assert.Equal(t, 1, out.DiscardedCarts)

	// El mismo token ya no sirve.
	resp = a.do(t, http.MethodPost, "/api/carts", tok, dto.StartCartRequest{Kind: "sale"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}
