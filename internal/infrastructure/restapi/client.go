// Package restapi implementa los repositorios del dominio contra la API REST de contabilidad.
// La API es la única fuente de verdad para totales, deuda y stock.
package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ventas-pos/internal/domain"
	"github.com/jhoicas/ventas-pos/pkg/logger"
)

// HeaderIdempotencyKey cabecera con la que se reenvía la clave de idempotencia.
const HeaderIdempotencyKey = "Idempotency-Key"

const maxBodyBytes = 4 << 20

func init() {
	// La API remota espera números JSON, no strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Client cliente HTTP JSON de la API remota. Sin reintentos: un fallo se propaga al usuario.
type Client struct {
	baseURL    string
	httpClient *http.Client
	loc        *time.Location
	log        *logger.Logger
}

// NewClient construye el cliente. loc es la zona en la que se interpretan fechas sin offset.
func NewClient(baseURL string, timeout time.Duration, loc *time.Location, log *logger.Logger) *Client {
	if loc == nil {
		loc = time.UTC
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		loc:        loc,
		log:        log.Component("restapi"),
	}
}

type request struct {
	method  string
	path    string
	query   url.Values
	body    any
	headers map[string]string
}

// do envía la petición y decodifica la respuesta en out (si no es nil).
// Respuestas no 2xx se traducen a errores de dominio.
func (c *Client) do(ctx context.Context, r request, out any) error {
	u := c.baseURL + r.path
	if len(r.query) > 0 {
		u += "?" + r.query.Encode()
	}

	var body io.Reader
	if r.body != nil {
		raw, err := json.Marshal(r.body)
		if err != nil {
			return fmt.Errorf("restapi: serializar %s %s: %w", r.method, r.path, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, u, body)
	if err != nil {
		return fmt.Errorf("restapi: crear request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range r.headers {
		if v != "" {
			req.Header.Set(k, v)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error().Err(err).Str("method", r.method).Str("path", r.path).Msg("llamada a la API remota fallida")
		if ctx.Err() != nil {
			return fmt.Errorf("restapi: %s %s: %w: %w", r.method, r.path, domain.ErrUpstream, ctx.Err())
		}
		return fmt.Errorf("restapi: %s %s: %w: %v", r.method, r.path, domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("restapi: leer respuesta: %w: %v", domain.ErrUpstream, err)
	}

	c.log.Debug().
		Str("method", r.method).
		Str("path", r.path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("API remota")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(r.method, r.path, resp.StatusCode, raw)
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("restapi: deserializar %s %s: %w: %v", r.method, r.path, domain.ErrUpstream, err)
	}
	return nil
}

func statusError(method, path string, status int, raw []byte) error {
	var kind error
	switch status {
	case http.StatusNotFound:
		kind = domain.ErrNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		kind = domain.ErrInvalidInput
	case http.StatusConflict:
		kind = domain.ErrConflict
	default:
		kind = domain.ErrUpstream
	}
	msg := strings.TrimSpace(string(raw))
	if len(msg) > 200 {
		msg = msg[:200]
	}
	return fmt.Errorf("restapi: %s %s: HTTP %d: %w (%s)", method, path, status, kind, msg)
}

// parseTime acepta RFC3339 y fechas locales sin offset (interpretadas en c.loc).
func (c *Client) parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.In(c.loc)
	}
	for _, layout := range []string{"2006-01-02T15:04:05.999999999", "2006-01-02T15:04:05", "2006-01-02T15:04", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, s, c.loc); err == nil {
			return t
		}
	}
	c.log.Warn().Str("value", s).Msg("fecha de la API remota no reconocida")
	return time.Time{}
}

// formatTime RFC3339 con el offset de c.loc, p. ej. 2026-10-05T10:20:30+07:00.
func (c *Client) formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(c.loc).Format(time.RFC3339)
}

func idPath(base string, id int64) string {
	return base + "/" + strconv.FormatInt(id, 10)
}

func pageQuery(page int, size int) url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))
	return q
}

// resource CRUD genérico sobre una colección de la API remota; W es el tipo JSON.
type resource[W any] struct {
	c    *Client
	path string
}

func (r resource[W]) list(ctx context.Context) ([]W, error) {
	var out []W
	if err := r.c.do(ctx, request{method: http.MethodGet, path: r.path}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r resource[W]) get(ctx context.Context, id int64) (*W, error) {
	var out W
	if err := r.c.do(ctx, request{method: http.MethodGet, path: idPath(r.path, id)}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r resource[W]) create(ctx context.Context, body any, idempotencyKey string) (*W, error) {
	var out W
	req := request{
		method:  http.MethodPost,
		path:    r.path,
		body:    body,
		headers: map[string]string{HeaderIdempotencyKey: idempotencyKey},
	}
	if err := r.c.do(ctx, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r resource[W]) update(ctx context.Context, id int64, body any, idempotencyKey string) (*W, error) {
	var out W
	req := request{
		method:  http.MethodPut,
		path:    idPath(r.path, id),
		body:    body,
		headers: map[string]string{HeaderIdempotencyKey: idempotencyKey},
	}
	if err := r.c.do(ctx, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r resource[W]) delete(ctx context.Context, id int64) error {
	return r.c.do(ctx, request{method: http.MethodDelete, path: idPath(r.path, id)}, nil)
}
