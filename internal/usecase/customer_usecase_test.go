package usecase

import (
	"context"
	"errors"
	"testing"

	"clicknova_admin/internal/domain/entities"
	mock_interfaces "clicknova_admin/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCustomerUseCase_Create(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		uc := NewCustomerUseCase(nil, nil, nil)
		_, err := uc.Create(context.Background(), entities.Customer{CustomerName: "  "})
		if !errors.Is(err, ErrInvalidCustomerInput) {
			t.Fatalf("expected ErrInvalidCustomerInput, got %v", err)
		}
	})

	t.Run("duplicate mobile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(customers, nil, nil)

		customers.EXPECT().GetByMobile(gomock.Any(), "9876543210").Return(entities.Customer{ID: "existing"}, nil)

		_, err := uc.Create(context.Background(), entities.Customer{CustomerName: "Asha", MobileNumber: "9876543210"})
		if !errors.Is(err, ErrCustomerAlreadyExists) {
			t.Fatalf("expected ErrCustomerAlreadyExists, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(customers, nil, nil)

		customers.EXPECT().GetByMobile(gomock.Any(), "9876543210").Return(entities.Customer{}, nil)
		customers.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Customer) (entities.Customer, error) {
				if c.ID == "" || c.CreatedAt.IsZero() {
					t.Fatalf("expected generated id and timestamps: %+v", c)
				}
				return c, nil
			},
		)

		res, err := uc.Create(context.Background(), entities.Customer{CustomerName: " Asha ", MobileNumber: " 9876543210 "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.CustomerName != "Asha" {
			t.Fatalf("expected trimmed name, got %q", res.CustomerName)
		}
	})
}

func TestCustomerUseCase_Update(t *testing.T) {
	t.Run("mobile collision with another customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(customers, nil, nil)

		customers.EXPECT().GetByMobile(gomock.Any(), "9876543210").Return(entities.Customer{ID: "other"}, nil)

		_, err := uc.Update(context.Background(), entities.Customer{ID: "c-1", CustomerName: "Asha", MobileNumber: "9876543210"})
		if !errors.Is(err, ErrCustomerAlreadyExists) {
			t.Fatalf("expected ErrCustomerAlreadyExists, got %v", err)
		}
	})

	t.Run("own mobile is not a collision", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(customers, nil, nil)

		customers.EXPECT().GetByMobile(gomock.Any(), "9876543210").Return(entities.Customer{ID: "c-1"}, nil)
		customers.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Customer) (entities.Customer, error) { return c, nil },
		)

		if _, err := uc.Update(context.Background(), entities.Customer{ID: "c-1", CustomerName: "Asha", MobileNumber: "9876543210"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCustomerUseCase_Delete(t *testing.T) {
	t.Run("cascades payments then services", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		services := mock_interfaces.NewMockICustomerServiceRepository(ctrl)
		payments := mock_interfaces.NewMockICustomerPaymentRepository(ctrl)
		uc := NewCustomerUseCase(customers, services, payments)

		customers.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Customer{ID: "c-1"}, nil)
		payments.EXPECT().ListByCustomerID(gomock.Any(), "c-1").Return([]entities.CustomerPayment{{ID: "p-1"}}, nil)
		payments.EXPECT().Delete(gomock.Any(), "p-1").Return(nil)
		services.EXPECT().ListByCustomerID(gomock.Any(), "c-1").Return([]entities.CustomerService{{ID: "s-1"}}, nil)
		services.EXPECT().Delete(gomock.Any(), "s-1").Return(nil)
		customers.EXPECT().Delete(gomock.Any(), "c-1").Return(nil)

		if err := uc.Delete(context.Background(), "c-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(customers, nil, nil)
		customers.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Customer{}, nil)

		if err := uc.Delete(context.Background(), "c-1"); !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})
}

func TestCustomerUseCase_Detail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	customers := mock_interfaces.NewMockICustomerRepository(ctrl)
	services := mock_interfaces.NewMockICustomerServiceRepository(ctrl)
	payments := mock_interfaces.NewMockICustomerPaymentRepository(ctrl)
	uc := NewCustomerUseCase(customers, services, payments)

	customers.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Customer{ID: "c-1", CustomerName: "Asha"}, nil)
	services.EXPECT().ListByCustomerID(gomock.Any(), "c-1").Return([]entities.CustomerService{
		{ID: "s-1", CustomerID: "c-1", ServiceName: "Website", TotalAmount: 10000},
		{ID: "s-2", CustomerID: "c-1", ServiceName: "SEO", TotalAmount: 5000},
	}, nil)
	payments.EXPECT().ListByCustomerID(gomock.Any(), "c-1").Return([]entities.CustomerPayment{
		{ID: "p-1", ServiceID: "s-1", Amount: 4000},
		{ID: "p-2", ServiceID: "s-1", Amount: 2000},
		{ID: "p-3", ServiceID: "s-2", Amount: 5000},
	}, nil)

	detail, err := uc.Detail(context.Background(), "c-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(detail.Services) != 2 {
		t.Fatalf("expected 2 ledgers, got %d", len(detail.Services))
	}
	website := detail.Services[0]
	if website.PaidAmount != 6000 || website.BalanceAmount != 4000 {
		t.Fatalf("unexpected website ledger: paid=%v balance=%v", website.PaidAmount, website.BalanceAmount)
	}
	seo := detail.Services[1]
	if seo.PaidAmount != 5000 || seo.BalanceAmount != 0 {
		t.Fatalf("unexpected seo ledger: paid=%v balance=%v", seo.PaidAmount, seo.BalanceAmount)
	}
	if detail.TotalAmount != 15000 || detail.TotalPaid != 11000 || detail.TotalBalance != 4000 {
		t.Fatalf("unexpected totals: %+v", detail)
	}
}

func TestCustomerUseCase_CreatePayment(t *testing.T) {
	t.Run("invalid amount", func(t *testing.T) {
		uc := NewCustomerUseCase(nil, nil, nil)
		_, err := uc.CreatePayment(context.Background(), entities.CustomerPayment{Amount: 0, PaymentMethod: entities.PaymentMethodCash})
		if !errors.Is(err, ErrInvalidPaymentAmount) {
			t.Fatalf("expected ErrInvalidPaymentAmount, got %v", err)
		}
	})

	t.Run("invalid method", func(t *testing.T) {
		uc := NewCustomerUseCase(nil, nil, nil)
		_, err := uc.CreatePayment(context.Background(), entities.CustomerPayment{Amount: 100, PaymentMethod: "Barter"})
		if !errors.Is(err, ErrInvalidPaymentMethod) {
			t.Fatalf("expected ErrInvalidPaymentMethod, got %v", err)
		}
	})

	t.Run("unknown service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		services := mock_interfaces.NewMockICustomerServiceRepository(ctrl)
		uc := NewCustomerUseCase(nil, services, nil)
		services.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.CustomerService{}, nil)

		_, err := uc.CreatePayment(context.Background(), entities.CustomerPayment{ServiceID: "s-1", Amount: 100, PaymentMethod: entities.PaymentMethodUPI})
		if !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})

	t.Run("derives the customer from the service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		services := mock_interfaces.NewMockICustomerServiceRepository(ctrl)
		payments := mock_interfaces.NewMockICustomerPaymentRepository(ctrl)
		uc := NewCustomerUseCase(nil, services, payments)

		services.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.CustomerService{ID: "s-1", CustomerID: "c-9"}, nil)
		payments.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.CustomerPayment) (entities.CustomerPayment, error) {
				if p.CustomerID != "c-9" {
					t.Fatalf("expected customer id from service, got %s", p.CustomerID)
				}
				return p, nil
			},
		)

		_, err := uc.CreatePayment(context.Background(), entities.CustomerPayment{
			ServiceID:     "s-1",
			CustomerID:    "spoofed",
			Amount:        100,
			PaymentMethod: entities.PaymentMethodUPI,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCustomerUseCase_DeleteService(t *testing.T) {
	t.Run("cascades payments", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		services := mock_interfaces.NewMockICustomerServiceRepository(ctrl)
		payments := mock_interfaces.NewMockICustomerPaymentRepository(ctrl)
		uc := NewCustomerUseCase(nil, services, payments)

		services.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.CustomerService{ID: "s-1"}, nil)
		payments.EXPECT().ListByServiceID(gomock.Any(), "s-1").Return([]entities.CustomerPayment{{ID: "p-1"}, {ID: "p-2"}}, nil)
		payments.EXPECT().Delete(gomock.Any(), "p-1").Return(nil)
		payments.EXPECT().Delete(gomock.Any(), "p-2").Return(nil)
		services.EXPECT().Delete(gomock.Any(), "s-1").Return(nil)

		if err := uc.DeleteService(context.Background(), "s-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
