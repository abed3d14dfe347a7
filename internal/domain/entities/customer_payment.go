package entities

import "time"

type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "Cash"
	PaymentMethodUPI          PaymentMethod = "UPI"
	PaymentMethodBankTransfer PaymentMethod = "Bank Transfer"
	PaymentMethodCard         PaymentMethod = "Card"
	PaymentMethodCheque       PaymentMethod = "Cheque"
)

// CustomerPayment is an instalment recorded against a customer's service.
// Both foreign keys are by-convention references; neither is enforced by the
// storage layer.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (customerId-index): customerId
//   - GSI (serviceId-index): serviceId
type CustomerPayment struct {
	ID               string        `json:"id"`
	CustomerID       string        `json:"customerId"`
	ServiceID        string        `json:"serviceId"`
	Amount           float64       `json:"amount"`
	PaymentMethod    PaymentMethod `json:"paymentMethod"`
	InstalmentNumber int           `json:"instalmentNumber"`
	Notes            string        `json:"notes"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}
