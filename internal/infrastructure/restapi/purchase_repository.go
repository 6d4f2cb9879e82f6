package restapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jhoicas/ventas-pos/internal/domain/entity"
	"github.com/jhoicas/ventas-pos/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo implementación de PurchaseRepository sobre /purchases.
type PurchaseRepo struct {
	c   *Client
	res resource[purchaseJSON]
}

// NewPurchaseRepository construye el adaptador.
func NewPurchaseRepository(c *Client) *PurchaseRepo {
	return &PurchaseRepo{c: c, res: resource[purchaseJSON]{c: c, path: "/purchases"}}
}

func (r *PurchaseRepo) Create(ctx context.Context, purchase *entity.Purchase, idempotencyKey string) (*entity.Purchase, error) {
	p, err := r.res.create(ctx, r.c.fromPurchase(purchase), idempotencyKey)
	if err != nil {
		return nil, err
	}
	return r.c.toPurchase(p), nil
}

func (r *PurchaseRepo) Update(ctx context.Context, purchase *entity.Purchase, idempotencyKey string) (*entity.Purchase, error) {
	p, err := r.res.update(ctx, purchase.ID, r.c.fromPurchase(purchase), idempotencyKey)
	if err != nil {
		return nil, err
	}
	return r.c.toPurchase(p), nil
}

func (r *PurchaseRepo) GetByID(ctx context.Context, id int64) (*entity.Purchase, error) {
	p, err := r.res.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return r.c.toPurchase(p), nil
}

func (r *PurchaseRepo) Delete(ctx context.Context, id int64) error {
	return r.res.delete(ctx, id)
}

// ListByMonth GET /purchases/filter?month&year. La API puede responder arreglo o página.
func (r *PurchaseRepo) ListByMonth(ctx context.Context, month, year int) ([]*entity.Purchase, error) {
	q := url.Values{}
	q.Set("month", strconv.Itoa(month))
	q.Set("year", strconv.Itoa(year))
	var list listOrPage[purchaseJSON]
	if err := r.c.do(ctx, request{method: http.MethodGet, path: "/purchases/filter", query: q}, &list); err != nil {
		return nil, err
	}
	out := make([]*entity.Purchase, 0, len(list.Items))
	for i := range list.Items {
		out = append(out, r.c.toPurchase(&list.Items[i]))
	}
	return out, nil
}

// Items GET /purchases/{id}/items?page&size
func (r *PurchaseRepo) Items(ctx context.Context, id int64, page repository.PageRequest) (*repository.Page[entity.PurchaseItem], error) {
	page = page.Normalize()
	var p pageJSON[purchaseItemJSON]
	req := request{method: http.MethodGet, path: idPath("/purchases", id) + "/items", query: pageQuery(page.Page, page.Size)}
	if err := r.c.do(ctx, req, &p); err != nil {
		return nil, err
	}
	return toPage(&p, func(it *purchaseItemJSON) entity.PurchaseItem {
		return toPurchaseItems([]purchaseItemJSON{*it})[0]
	}), nil
}
