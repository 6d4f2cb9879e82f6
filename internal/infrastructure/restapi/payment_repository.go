package restapi

import (
	"context"
	"net/http"

	"github.com/jhoicas/ventas-pos/internal/domain/entity"
	"github.com/jhoicas/ventas-pos/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implementación de PaymentRepository sobre /payments.
type PaymentRepo struct {
	c   *Client
	res resource[paymentJSON]
}

// NewPaymentRepository construye el adaptador.
func NewPaymentRepository(c *Client) *PaymentRepo {
	return &PaymentRepo{c: c, res: resource[paymentJSON]{c: c, path: "/payments"}}
}

func (r *PaymentRepo) List(ctx context.Context) ([]*entity.Payment, error) {
	list, err := r.res.list(ctx)
	if err != nil {
		return nil, err
	}
	return r.convert(list), nil
}

// ListForReport GET /payments/reports: abonos con el nombre del cliente resuelto.
func (r *PaymentRepo) ListForReport(ctx context.Context) ([]*entity.Payment, error) {
	var list []paymentJSON
	if err := r.c.do(ctx, request{method: http.MethodGet, path: "/payments/reports"}, &list); err != nil {
		return nil, err
	}
	return r.convert(list), nil
}

func (r *PaymentRepo) GetByID(ctx context.Context, id int64) (*entity.Payment, error) {
	p, err := r.res.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return r.c.toPayment(p), nil
}

func (r *PaymentRepo) Create(ctx context.Context, payment *entity.Payment) (*entity.Payment, error) {
	p, err := r.res.create(ctx, r.c.fromPayment(payment), "")
	if err != nil {
		return nil, err
	}
	return r.c.toPayment(p), nil
}

func (r *PaymentRepo) Update(ctx context.Context, payment *entity.Payment) (*entity.Payment, error) {
	p, err := r.res.update(ctx, payment.ID, r.c.fromPayment(payment), "")
	if err != nil {
		return nil, err
	}
	return r.c.toPayment(p), nil
}

func (r *PaymentRepo) Delete(ctx context.Context, id int64) error {
	return r.res.delete(ctx, id)
}

func (r *PaymentRepo) convert(list []paymentJSON) []*entity.Payment {
	out := make([]*entity.Payment, 0, len(list))
	for i := range list {
		out = append(out, r.c.toPayment(&list[i]))
	}
	return out
}
