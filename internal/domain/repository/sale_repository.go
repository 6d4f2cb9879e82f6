package repository

import (
	"context"
	"time"

	"github.com/jhoicas/ventas-pos/internal/domain/entity"
)

// SaleRepository puerto hacia las ventas. idempotencyKey se reenvía tal cual a la API remota.
type SaleRepository interface {
	Create(ctx context.Context, draft entity.SaleDraft, idempotencyKey string) (*entity.Sale, error)
	Update(ctx context.Context, id int64, draft entity.SaleDraft) (*entity.Sale, error)
	GetByID(ctx context.Context, id int64) (*entity.Sale, error)
	List(ctx context.Context) ([]*entity.Sale, error)
	Delete(ctx context.Context, id int64) error
	ListByDate(ctx context.Context, start, end time.Time, page PageRequest) (*Page[*entity.Sale], error)
	ListCurrentMonth(ctx context.Context, page PageRequest) (*Page[*entity.Sale], error)
}
