package entities

import "time"

// CatalogService is an entry of the offered-services catalog. The catalog
// feeds the lead requirement dropdown and quotation item descriptions.
//
// Storage model (DynamoDB):
//   - PK: id
type CatalogService struct {
	ID          string    `json:"id"`
	ServiceName string    `json:"serviceName"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
