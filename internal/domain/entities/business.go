package entities

import "time"

// Business is a revenue entry credited to one employee, summed by the
// employee target view.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (employeeId-index): employeeId
type Business struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employeeId"`
	BusinessName string    `json:"businessName"`
	Amount       float64   `json:"amount"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
