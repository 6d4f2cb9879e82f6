package repository

import (
	"context"

	"github.com/jhoicas/ventas-pos/internal/domain/entity"
)

// CustomerRepository puerto hacia los clientes de la API remota.
// GetByID devuelve domain.ErrNotFound si el cliente no existe.
type CustomerRepository interface {
	List(ctx context.Context) ([]*entity.Customer, error)
	GetByID(ctx context.Context, id int64) (*entity.Customer, error)
	Create(ctx context.Context, customer *entity.Customer) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) (*entity.Customer, error)
	Delete(ctx context.Context, id int64) error
}
