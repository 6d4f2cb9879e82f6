package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/ventas-pos/internal/application/dto"
	"github.com/jhoicas/ventas-pos/internal/domain/entity"
	"github.com/jhoicas/ventas-pos/internal/domain/repository"
)

// CustomerUseCase casos de uso para clientes. TotalDebt es de solo lectura.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// List lista clientes; search filtra por nombre o teléfono.
func (uc *CustomerUseCase) List(ctx context.Context, search string) ([]dto.CustomerResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		if matches(search, c.Name, c.Phone) {
			out = append(out, dto.FromCustomer(c))
		}
	}
	return out, nil
}

// GetByID obtiene un cliente por ID.
func (uc *CustomerUseCase) GetByID(ctx context.Context, id int64) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.FromCustomer(c)
	return &out, nil
}

// Create crea un nuevo cliente.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	if err := in.Validate().Err(); err != nil {
		return nil, err
	}
	c, err := uc.repo.Create(ctx, toCustomer(0, in))
	if err != nil {
		return nil, err
	}
	out := dto.FromCustomer(c)
	return &out, nil
}

// Update reemplaza nombre, teléfono y dirección.
func (uc *CustomerUseCase) Update(ctx context.Context, id int64, in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	if err := in.Validate().Err(); err != nil {
		return nil, err
	}
	c, err := uc.repo.Update(ctx, toCustomer(id, in))
	if err != nil {
		return nil, err
	}
	out := dto.FromCustomer(c)
	return &out, nil
}

// Delete elimina el cliente.
func (uc *CustomerUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func toCustomer(id int64, in dto.CustomerRequest) *entity.Customer {
	return &entity.Customer{
		ID:      id,
		Name:    strings.TrimSpace(in.Name),
		Phone:   strings.TrimSpace(in.Phone),
		Address: strings.TrimSpace(in.Address),
	}
}
