package interfaces

import (
	"context"

	"clicknova_admin/internal/domain/entities"
)

type ICustomerRepository interface {
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	GetByMobile(ctx context.Context, mobile string) (entities.Customer, error)
	Update(ctx context.Context, c entities.Customer) (entities.Customer, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]entities.Customer, error)
}

type ICustomerServiceRepository interface {
	Create(ctx context.Context, s entities.CustomerService) (entities.CustomerService, error)
	GetByID(ctx context.Context, id string) (entities.CustomerService, error)
	Update(ctx context.Context, s entities.CustomerService) (entities.CustomerService, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]entities.CustomerService, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.CustomerService, error)
}

type ICustomerPaymentRepository interface {
	Create(ctx context.Context, p entities.CustomerPayment) (entities.CustomerPayment, error)
	GetByID(ctx context.Context, id string) (entities.CustomerPayment, error)
	Update(ctx context.Context, p entities.CustomerPayment) (entities.CustomerPayment, error)
	Delete(ctx context.Context, id string) error
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.CustomerPayment, error)
	ListByServiceID(ctx context.Context, serviceID string) ([]entities.CustomerPayment, error)
}
