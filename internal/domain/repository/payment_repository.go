package repository

import (
	"context"

	"github.com/jhoicas/ventas-pos/internal/domain/entity"
)

// PaymentRepository puerto hacia los abonos de clientes.
type PaymentRepository interface {
	List(ctx context.Context) ([]*entity.Payment, error)
	ListForReport(ctx context.Context) ([]*entity.Payment, error)
	GetByID(ctx context.Context, id int64) (*entity.Payment, error)
	Create(ctx context.Context, payment *entity.Payment) (*entity.Payment, error)
	Update(ctx context.Context, payment *entity.Payment) (*entity.Payment, error)
	Delete(ctx context.Context, id int64) error
}
