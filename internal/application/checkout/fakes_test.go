package checkout_test

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ventas-pos/internal/domain"
	"github.com/jhoicas/ventas-pos/internal/domain/entity"
	"github.com/jhoicas/ventas-pos/internal/domain/repository"
)

// Dobles de la API remota: guardan lo recibido y cuentan llamadas.

type fakeProducts struct {
	mu    sync.Mutex
	items map[int64]*entity.Product
	gets  int
}

var _ repository.ProductRepository = (*fakeProducts)(nil)

func newFakeProducts(ps ...*entity.Product) *fakeProducts {
	f := &fakeProducts{items: map[int64]*entity.Product{}}
	for _, p := range ps {
		f.items[p.ID] = p
	}
	return f
}

func (f *fakeProducts) List(context.Context) ([]*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*entity.Product, 0, len(f.items))
	for _, p := range f.items {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProducts) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gets++
	p, ok := f.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProducts) Create(_ context.Context, p *entity.Product) (*entity.Product, error) {
	return p, nil
}

func (f *fakeProducts) Update(_ context.Context, p *entity.Product) (*entity.Product, error) {
	return p, nil
}

func (f *fakeProducts) Delete(context.Context, int64) error { return nil }

type fakeCustomers struct {
	mu    sync.Mutex
	items map[int64]*entity.Customer
	gets  int
}

var _ repository.CustomerRepository = (*fakeCustomers)(nil)

func newFakeCustomers(cs ...*entity.Customer) *fakeCustomers {
	f := &fakeCustomers{items: map[int64]*entity.Customer{}}
	for _, c := range cs {
		f.items[c.ID] = c
	}
	return f
}

func (f *fakeCustomers) setDebt(id int64, debt decimal.Decimal) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[id].TotalDebt = debt
}

func (f *fakeCustomers) List(context.Context) ([]*entity.Customer, error) { return nil, nil }

func (f *fakeCustomers) GetByID(_ context.Context, id int64) (*entity.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gets++
	c, ok := f.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCustomers) Create(_ context.Context, c *entity.Customer) (*entity.Customer, error) {
	return c, nil
}

func (f *fakeCustomers) Update(_ context.Context, c *entity.Customer) (*entity.Customer, error) {
	return c, nil
}

func (f *fakeCustomers) Delete(context.Context, int64) error { return nil }

type fakeSales struct {
	mu     sync.Mutex
	drafts []entity.SaleDraft
	keys   []string
	err    error
	calls  int
	nextID int64
}

var _ repository.SaleRepository = (*fakeSales)(nil)

func (f *fakeSales) Create(_ context.Context, d entity.SaleDraft, key string) (*entity.Sale, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	f.drafts = append(f.drafts, d)
	f.keys = append(f.keys, key)
	f.nextID++
	total := decimal.Zero
	for _, it := range d.Items {
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Qty))))
	}
	return &entity.Sale{
		ID:         100 + f.nextID,
		Customer:   entity.CustomerRef{ID: d.CustomerID},
		TotalPrice: total,
		PaidAmount: d.PaidAmount,
		Debt:       total.Sub(d.PaidAmount),
	}, nil
}

func (f *fakeSales) Update(context.Context, int64, entity.SaleDraft) (*entity.Sale, error) {
	return nil, domain.ErrNotFound
}

func (f *fakeSales) GetByID(context.Context, int64) (*entity.Sale, error) {
	return nil, domain.ErrNotFound
}

func (f *fakeSales) List(context.Context) ([]*entity.Sale, error) { return nil, nil }

func (f *fakeSales) Delete(context.Context, int64) error { return nil }

func (f *fakeSales) ListByDate(context.Context, time.Time, time.Time, repository.PageRequest) (*repository.Page[*entity.Sale], error) {
	return &repository.Page[*entity.Sale]{}, nil
}

func (f *fakeSales) ListCurrentMonth(context.Context, repository.PageRequest) (*repository.Page[*entity.Sale], error) {
	return &repository.Page[*entity.Sale]{}, nil
}

type fakePurchases struct {
	mu      sync.Mutex
	byID    map[int64]*entity.Purchase
	created []*entity.Purchase
	updated []*entity.Purchase
	err     error
}

var _ repository.PurchaseRepository = (*fakePurchases)(nil)

func newFakePurchases(ps ...*entity.Purchase) *fakePurchases {
	f := &fakePurchases{byID: map[int64]*entity.Purchase{}}
	for _, p := range ps {
		f.byID[p.ID] = p
	}
	return f
}

func (f *fakePurchases) Create(_ context.Context, p *entity.Purchase, _ string) (*entity.Purchase, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, p)
	cp := *p
	cp.ID = int64(500 + len(f.created))
	return &cp, nil
}

func (f *fakePurchases) Update(_ context.Context, p *entity.Purchase, _ string) (*entity.Purchase, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.updated = append(f.updated, p)
	cp := *p
	return &cp, nil
}

func (f *fakePurchases) GetByID(_ context.Context, id int64) (*entity.Purchase, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (f *fakePurchases) Delete(context.Context, int64) error { return nil }

func (f *fakePurchases) ListByMonth(context.Context, int, int) ([]*entity.Purchase, error) {
	return nil, nil
}

func (f *fakePurchases) Items(context.Context, int64, repository.PageRequest) (*repository.Page[entity.PurchaseItem], error) {
	return &repository.Page[entity.PurchaseItem]{}, nil
}
