package entities

import "time"

// CustomerService is a contracted engagement belonging to one customer.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (customerId-index): customerId
type CustomerService struct {
	ID          string    `json:"id"`
	CustomerID  string    `json:"customerId"`
	ServiceName string    `json:"serviceName"`
	TotalAmount float64   `json:"totalAmount"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
