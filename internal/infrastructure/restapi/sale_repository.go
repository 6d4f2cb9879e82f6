package restapi

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/jhoicas/ventas-pos/internal/domain/entity"
	"github.com/jhoicas/ventas-pos/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository sobre /sales.
type SaleRepo struct {
	c   *Client
	res resource[saleJSON]
}

// NewSaleRepository construye el adaptador.
func NewSaleRepository(c *Client) *SaleRepo {
	return &SaleRepo{c: c, res: resource[saleJSON]{c: c, path: "/sales"}}
}

// Create POST /sales con la cabecera Idempotency-Key.
func (r *SaleRepo) Create(ctx context.Context, draft entity.SaleDraft, idempotencyKey string) (*entity.Sale, error) {
	s, err := r.res.create(ctx, fromSaleDraft(draft), idempotencyKey)
	if err != nil {
		return nil, err
	}
	return r.c.toSale(s), nil
}

func (r *SaleRepo) Update(ctx context.Context, id int64, draft entity.SaleDraft) (*entity.Sale, error) {
	s, err := r.res.update(ctx, id, fromSaleDraft(draft), "")
	if err != nil {
		return nil, err
	}
	return r.c.toSale(s), nil
}

func (r *SaleRepo) GetByID(ctx context.Context, id int64) (*entity.Sale, error) {
	s, err := r.res.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return r.c.toSale(s), nil
}

func (r *SaleRepo) List(ctx context.Context) ([]*entity.Sale, error) {
	list, err := r.res.list(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Sale, 0, len(list))
	for i := range list {
		out = append(out, r.c.toSale(&list[i]))
	}
	return out, nil
}

func (r *SaleRepo) Delete(ctx context.Context, id int64) error {
	return r.res.delete(ctx, id)
}

// ListByDate GET /sales/by-date?startDate&endDate&page&size con fechas YYYY-MM-DD.
func (r *SaleRepo) ListByDate(ctx context.Context, start, end time.Time, page repository.PageRequest) (*repository.Page[*entity.Sale], error) {
	page = page.Normalize()
	q := pageQuery(page.Page, page.Size)
	q.Set("startDate", start.In(r.c.loc).Format("2006-01-02"))
	q.Set("endDate", end.In(r.c.loc).Format("2006-01-02"))
	return r.page(ctx, "/sales/by-date", q)
}

// ListCurrentMonth GET /sales/current-month-dto/month?page&size
func (r *SaleRepo) ListCurrentMonth(ctx context.Context, page repository.PageRequest) (*repository.Page[*entity.Sale], error) {
	page = page.Normalize()
	return r.page(ctx, "/sales/current-month-dto/month", pageQuery(page.Page, page.Size))
}

func (r *SaleRepo) page(ctx context.Context, path string, q url.Values) (*repository.Page[*entity.Sale], error) {
	var p pageJSON[saleJSON]
	if err := r.c.do(ctx, request{method: http.MethodGet, path: path, query: q}, &p); err != nil {
		return nil, err
	}
	return toPage(&p, r.c.toSale), nil
}
