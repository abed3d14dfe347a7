package entities

import "time"

// Customer is a converted client. Keyed by an opaque UUID document id; the
// mobile number is an ordinary field resolvable through the mobileNumber-index
// GSI (it is never used as the document key).
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (mobileNumber-index): mobileNumber
type Customer struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customerName"`
	MobileNumber string    `json:"mobileNumber"`
	Address      string    `json:"address"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
