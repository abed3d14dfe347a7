package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"clicknova_admin/internal/domain/entities"
	"clicknova_admin/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrCustomerNotFound      = errors.New("customer not found")
	ErrCustomerAlreadyExists = errors.New("customer with this mobile number already exists")
	ErrInvalidCustomerID     = errors.New("invalid customer id")
	ErrInvalidCustomerInput  = errors.New("customer name and mobile number are required")

	ErrServiceNotFound     = errors.New("customer service not found")
	ErrInvalidServiceID    = errors.New("invalid service id")
	ErrInvalidServiceInput = errors.New("service name is required")

	ErrPaymentNotFound      = errors.New("payment not found")
	ErrInvalidPaymentID     = errors.New("invalid payment id")
	ErrInvalidPaymentAmount = errors.New("payment amount must be positive")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
)

var paymentMethods = map[entities.PaymentMethod]struct{}{
	entities.PaymentMethodCash:         {},
	entities.PaymentMethodUPI:          {},
	entities.PaymentMethodBankTransfer: {},
	entities.PaymentMethodCard:         {},
	entities.PaymentMethodCheque:       {},
}

// ServiceLedger pairs a contracted service with the payments recorded against
// it. PaidAmount and BalanceAmount are derived on every read, never stored.
type ServiceLedger struct {
	Service       entities.CustomerService
	Payments      []entities.CustomerPayment
	PaidAmount    float64
	BalanceAmount float64
}

// CustomerDetail is the aggregate the customer page renders: the customer
// plus a ledger per service.
type CustomerDetail struct {
	Customer     entities.Customer
	Services     []ServiceLedger
	TotalAmount  float64
	TotalPaid    float64
	TotalBalance float64
}

type ICustomerUseCase interface {
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	Update(ctx context.Context, c entities.Customer) (entities.Customer, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]entities.Customer, error)
	Detail(ctx context.Context, id string) (CustomerDetail, error)

	CreateService(ctx context.Context, s entities.CustomerService) (entities.CustomerService, error)
	UpdateService(ctx context.Context, s entities.CustomerService) (entities.CustomerService, error)
	DeleteService(ctx context.Context, id string) error
	ListServices(ctx context.Context) ([]entities.CustomerService, error)

	CreatePayment(ctx context.Context, p entities.CustomerPayment) (entities.CustomerPayment, error)
	UpdatePayment(ctx context.Context, p entities.CustomerPayment) (entities.CustomerPayment, error)
	DeletePayment(ctx context.Context, id string) error
}

type CustomerUseCase struct {
	customers interfaces.ICustomerRepository
	services  interfaces.ICustomerServiceRepository
	payments  interfaces.ICustomerPaymentRepository
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(
	customers interfaces.ICustomerRepository,
	services interfaces.ICustomerServiceRepository,
	payments interfaces.ICustomerPaymentRepository,
) *CustomerUseCase {
	return &CustomerUseCase{customers: customers, services: services, payments: payments}
}

func (u *CustomerUseCase) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	c.CustomerName = strings.TrimSpace(c.CustomerName)
	c.MobileNumber = strings.TrimSpace(c.MobileNumber)
	if c.CustomerName == "" || c.MobileNumber == "" {
		return entities.Customer{}, ErrInvalidCustomerInput
	}

	// Enforce: 1 customer per mobile number.
	if existing, err := u.customers.GetByMobile(ctx, c.MobileNumber); err != nil {
		return entities.Customer{}, err
	} else if existing.ID != "" {
		return entities.Customer{}, ErrCustomerAlreadyExists
	}

	now := time.Now().UTC()
	c.ID = uuid.NewString()
	c.CreatedAt = now
	c.UpdatedAt = now
	return u.customers.Create(ctx, c)
}

func (u *CustomerUseCase) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Customer{}, ErrInvalidCustomerID
	}

	c, err := u.customers.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return c, nil
}

func (u *CustomerUseCase) Update(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	c.ID = strings.TrimSpace(c.ID)
	if c.ID == "" {
		return entities.Customer{}, ErrInvalidCustomerID
	}
	c.CustomerName = strings.TrimSpace(c.CustomerName)
	c.MobileNumber = strings.TrimSpace(c.MobileNumber)
	if c.CustomerName == "" || c.MobileNumber == "" {
		return entities.Customer{}, ErrInvalidCustomerInput
	}

	// A mobile edit must not collide with another customer.
	if existing, err := u.customers.GetByMobile(ctx, c.MobileNumber); err != nil {
		return entities.Customer{}, err
	} else if existing.ID != "" && existing.ID != c.ID {
		return entities.Customer{}, ErrCustomerAlreadyExists
	}

	updated, err := u.customers.Update(ctx, c)
	if err != nil {
		return entities.Customer{}, err
	}
	if updated.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return updated, nil
}

// Delete removes the customer together with its services and payments. The
// children go first so an interrupted delete never orphans them behind a
// still-listed customer.
func (u *CustomerUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	id = strings.TrimSpace(id)

	payments, err := u.payments.ListByCustomerID(ctx, id)
	if err != nil {
		return err
	}
	for _, p := range payments {
		if err := u.payments.Delete(ctx, p.ID); err != nil {
			return err
		}
	}

	services, err := u.services.ListByCustomerID(ctx, id)
	if err != nil {
		return err
	}
	for _, s := range services {
		if err := u.services.Delete(ctx, s.ID); err != nil {
			return err
		}
	}

	return u.customers.Delete(ctx, id)
}

func (u *CustomerUseCase) List(ctx context.Context) ([]entities.Customer, error) {
	return u.customers.List(ctx)
}

func (u *CustomerUseCase) Detail(ctx context.Context, id string) (CustomerDetail, error) {
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return CustomerDetail{}, err
	}

	services, err := u.services.ListByCustomerID(ctx, c.ID)
	if err != nil {
		return CustomerDetail{}, err
	}
	payments, err := u.payments.ListByCustomerID(ctx, c.ID)
	if err != nil {
		return CustomerDetail{}, err
	}

	byService := make(map[string][]entities.CustomerPayment, len(services))
	for _, p := range payments {
		byService[p.ServiceID] = append(byService[p.ServiceID], p)
	}

	detail := CustomerDetail{Customer: c, Services: make([]ServiceLedger, 0, len(services))}
	for _, s := range services {
		ledger := ServiceLedger{Service: s, Payments: byService[s.ID]}
		for _, p := range ledger.Payments {
			ledger.PaidAmount += p.Amount
		}
		ledger.BalanceAmount = s.TotalAmount - ledger.PaidAmount

		detail.Services = append(detail.Services, ledger)
		detail.TotalAmount += s.TotalAmount
		detail.TotalPaid += ledger.PaidAmount
		detail.TotalBalance += ledger.BalanceAmount
	}
	return detail, nil
}

func (u *CustomerUseCase) CreateService(ctx context.Context, s entities.CustomerService) (entities.CustomerService, error) {
	s.ServiceName = strings.TrimSpace(s.ServiceName)
	if s.ServiceName == "" {
		return entities.CustomerService{}, ErrInvalidServiceInput
	}
	if _, err := u.GetByID(ctx, s.CustomerID); err != nil {
		return entities.CustomerService{}, err
	}

	now := time.Now().UTC()
	s.CustomerID = strings.TrimSpace(s.CustomerID)
	s.ID = uuid.NewString()
	s.CreatedAt = now
	s.UpdatedAt = now
	return u.services.Create(ctx, s)
}

func (u *CustomerUseCase) UpdateService(ctx context.Context, s entities.CustomerService) (entities.CustomerService, error) {
	s.ID = strings.TrimSpace(s.ID)
	if s.ID == "" {
		return entities.CustomerService{}, ErrInvalidServiceID
	}
	s.ServiceName = strings.TrimSpace(s.ServiceName)
	if s.ServiceName == "" {
		return entities.CustomerService{}, ErrInvalidServiceInput
	}

	updated, err := u.services.Update(ctx, s)
	if err != nil {
		return entities.CustomerService{}, err
	}
	if updated.ID == "" {
		return entities.CustomerService{}, ErrServiceNotFound
	}
	return updated, nil
}

// DeleteService also removes every payment recorded against the service.
func (u *CustomerUseCase) DeleteService(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidServiceID
	}
	s, err := u.services.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if s.ID == "" {
		return ErrServiceNotFound
	}

	payments, err := u.payments.ListByServiceID(ctx, id)
	if err != nil {
		return err
	}
	for _, p := range payments {
		if err := u.payments.Delete(ctx, p.ID); err != nil {
			return err
		}
	}

	return u.services.Delete(ctx, id)
}

func (u *CustomerUseCase) ListServices(ctx context.Context) ([]entities.CustomerService, error) {
	return u.services.List(ctx)
}

func (u *CustomerUseCase) CreatePayment(ctx context.Context, p entities.CustomerPayment) (entities.CustomerPayment, error) {
	if p.Amount <= 0 {
		return entities.CustomerPayment{}, ErrInvalidPaymentAmount
	}
	if _, ok := paymentMethods[p.PaymentMethod]; !ok {
		return entities.CustomerPayment{}, ErrInvalidPaymentMethod
	}
	p.ServiceID = strings.TrimSpace(p.ServiceID)
	s, err := u.services.GetByID(ctx, p.ServiceID)
	if err != nil {
		return entities.CustomerPayment{}, err
	}
	if s.ID == "" {
		return entities.CustomerPayment{}, ErrServiceNotFound
	}

	now := time.Now().UTC()
	p.CustomerID = s.CustomerID
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now
	return u.payments.Create(ctx, p)
}

func (u *CustomerUseCase) UpdatePayment(ctx context.Context, p entities.CustomerPayment) (entities.CustomerPayment, error) {
	p.ID = strings.TrimSpace(p.ID)
	if p.ID == "" {
		return entities.CustomerPayment{}, ErrInvalidPaymentID
	}
	if p.Amount <= 0 {
		return entities.CustomerPayment{}, ErrInvalidPaymentAmount
	}
	if _, ok := paymentMethods[p.PaymentMethod]; !ok {
		return entities.CustomerPayment{}, ErrInvalidPaymentMethod
	}

	updated, err := u.payments.Update(ctx, p)
	if err != nil {
		return entities.CustomerPayment{}, err
	}
	if updated.ID == "" {
		return entities.CustomerPayment{}, ErrPaymentNotFound
	}
	return updated, nil
}

func (u *CustomerUseCase) DeletePayment(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidPaymentID
	}
	p, err := u.payments.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p.ID == "" {
		return ErrPaymentNotFound
	}
	return u.payments.Delete(ctx, id)
}
