package response

import (
	"clicknova_admin/internal/domain/entities"
	"clicknova_admin/internal/usecase"
)

type ServiceLedgerResponse struct {
	Service       entities.CustomerService   `json:"service"`
	Payments      []entities.CustomerPayment `json:"payments"`
	PaidAmount    float64                    `json:"paidAmount"`
	BalanceAmount float64                    `json:"balanceAmount"`
}

// CustomerDetailResponse is the customer page aggregate: the customer plus a
// per-service ledger with derived paid and balance figures.
type CustomerDetailResponse struct {
	Customer     entities.Customer       `json:"customer"`
	Services     []ServiceLedgerResponse `json:"services"`
	TotalAmount  float64                 `json:"totalAmount"`
	TotalPaid    float64                 `json:"totalPaid"`
	TotalBalance float64                 `json:"totalBalance"`
}

func FromCustomerDetail(d usecase.CustomerDetail) CustomerDetailResponse {
	services := make([]ServiceLedgerResponse, 0, len(d.Services))
	for _, ledger := range d.Services {
		payments := ledger.Payments
		if payments == nil {
			payments = []entities.CustomerPayment{}
		}
		services = append(services, ServiceLedgerResponse{
			Service:       ledger.Service,
			Payments:      payments,
			PaidAmount:    ledger.PaidAmount,
			BalanceAmount: ledger.BalanceAmount,
		})
	}
	return CustomerDetailResponse{
		Customer:     d.Customer,
		Services:     services,
		TotalAmount:  d.TotalAmount,
		TotalPaid:    d.TotalPaid,
		TotalBalance: d.TotalBalance,
	}
}
