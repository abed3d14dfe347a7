package request

import "clicknova_admin/internal/domain/entities"

type CustomerRequest struct {
	CustomerName string `json:"customerName" binding:"required"`
	MobileNumber string `json:"mobileNumber" binding:"required,indianmobile"`
	Address      string `json:"address"`
}

func (r CustomerRequest) ToEntity(id string) entities.Customer {
	return entities.Customer{
		ID:           id,
		CustomerName: r.CustomerName,
		MobileNumber: r.MobileNumber,
		Address:      r.Address,
	}
}

type CustomerServiceRequest struct {
	CustomerID  string  `json:"customerId" binding:"required"`
	ServiceName string  `json:"serviceName" binding:"required"`
	TotalAmount float64 `json:"totalAmount" binding:"gte=0"`
}

func (r CustomerServiceRequest) ToEntity(id string) entities.CustomerService {
	return entities.CustomerService{
		ID:          id,
		CustomerID:  r.CustomerID,
		ServiceName: r.ServiceName,
		TotalAmount: r.TotalAmount,
	}
}

type CustomerPaymentRequest struct {
	ServiceID        string  `json:"serviceId" binding:"required"`
	Amount           float64 `json:"amount" binding:"required,gt=0"`
	PaymentMethod    string  `json:"paymentMethod" binding:"required"`
	InstalmentNumber int     `json:"instalmentNumber"`
	Notes            string  `json:"notes"`
}

func (r CustomerPaymentRequest) ToEntity(id string) entities.CustomerPayment {
	return entities.CustomerPayment{
		ID:               id,
		ServiceID:        r.ServiceID,
		Amount:           r.Amount,
		PaymentMethod:    entities.PaymentMethod(r.PaymentMethod),
		InstalmentNumber: r.InstalmentNumber,
		Notes:            r.Notes,
	}
}
