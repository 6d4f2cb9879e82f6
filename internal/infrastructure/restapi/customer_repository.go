package restapi

import (
	"context"

	"github.com/jhoicas/ventas-pos/internal/domain/entity"
	"github.com/jhoicas/ventas-pos/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository sobre /customers.
type CustomerRepo struct {
	res resource[customerJSON]
}

// NewCustomerRepository construye el adaptador.
func NewCustomerRepository(c *Client) *CustomerRepo {
	return &CustomerRepo{res: resource[customerJSON]{c: c, path: "/customers"}}
}

func (r *CustomerRepo) List(ctx context.Context) ([]*entity.Customer, error) {
	list, err := r.res.list(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Customer, 0, len(list))
	for i := range list {
		out = append(out, toCustomer(&list[i]))
	}
	return out, nil
}

func (r *CustomerRepo) GetByID(ctx context.Context, id int64) (*entity.Customer, error) {
	c, err := r.res.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCustomer(c), nil
}

func (r *CustomerRepo) Create(ctx context.Context, customer *entity.Customer) (*entity.Customer, error) {
	c, err := r.res.create(ctx, fromCustomer(customer), "")
	if err != nil {
		return nil, err
	}
	return toCustomer(c), nil
}

func (r *CustomerRepo) Update(ctx context.Context, customer *entity.Customer) (*entity.Customer, error) {
	c, err := r.res.update(ctx, customer.ID, fromCustomer(customer), "")
	if err != nil {
		return nil, err
	}
	return toCustomer(c), nil
}

func (r *CustomerRepo) Delete(ctx context.Context, id int64) error {
	return r.res.delete(ctx, id)
}
