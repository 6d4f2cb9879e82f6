package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/ventas-pos/internal/application/dto"
	"github.com/jhoicas/ventas-pos/internal/domain"
	"github.com/jhoicas/ventas-pos/internal/domain/entity"
	"github.com/jhoicas/ventas-pos/internal/domain/repository"
	"github.com/jhoicas/ventas-pos/pkg/format"
)

// PaymentUseCase abonos de clientes. La API remota descuenta el abono de la deuda.
type PaymentUseCase struct {
	repo repository.PaymentRepository
	loc  *time.Location
	now  func() time.Time
}

// NewPaymentUseCase construye el caso de uso. loc es la zona de las fechas ingresadas.
func NewPaymentUseCase(repo repository.PaymentRepository, loc *time.Location) *PaymentUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &PaymentUseCase{repo: repo, loc: loc, now: time.Now}
}

// List lista todos los abonos.
func (uc *PaymentUseCase) List(ctx context.Context) ([]dto.PaymentResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PaymentResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.FromPayment(p))
	}
	return out, nil
}

// GetByID obtiene un abono por ID.
func (uc *PaymentUseCase) GetByID(ctx context.Context, id int64) (*dto.PaymentResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.FromPayment(p)
	return &out, nil
}

// Create registra un abono. Sin fecha se usa el instante actual.
func (uc *PaymentUseCase) Create(ctx context.Context, in dto.PaymentRequest) (*dto.PaymentResponse, error) {
	p, err := uc.toPayment(0, in)
	if err != nil {
		return nil, err
	}
	saved, err := uc.repo.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	out := dto.FromPayment(saved)
	return &out, nil
}

// Update reemplaza el abono.
func (uc *PaymentUseCase) Update(ctx context.Context, id int64, in dto.PaymentRequest) (*dto.PaymentResponse, error) {
	p, err := uc.toPayment(id, in)
	if err != nil {
		return nil, err
	}
	saved, err := uc.repo.Update(ctx, p)
	if err != nil {
		return nil, err
	}
	out := dto.FromPayment(saved)
	return &out, nil
}

// Delete elimina el abono.
func (uc *PaymentUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func (uc *PaymentUseCase) toPayment(id int64, in dto.PaymentRequest) (*entity.Payment, error) {
	if err := in.Validate().Err(); err != nil {
		return nil, err
	}
	date := uc.now().In(uc.loc)
	if in.PaymentDate != "" {
		t, err := format.ParseDateTimeInput(in.PaymentDate, uc.loc)
		if err != nil {
			return nil, domain.NewValidationError("paymentDate", domain.ReasonInvalidFormat)
		}
		date = t
	}
	return &entity.Payment{
		ID:          id,
		Customer:    entity.CustomerRef{ID: in.CustomerID},
		Amount:      in.Amount,
		PaymentDate: date,
		Remark:      strings.TrimSpace(in.Remark),
	}, nil
}
