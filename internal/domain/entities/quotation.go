package entities

import "time"

type QuotationStatus string

const (
	QuotationStatusDraft    QuotationStatus = "Draft"
	QuotationStatusSent     QuotationStatus = "Sent"
	QuotationStatusAccepted QuotationStatus = "Accepted"
	QuotationStatusRejected QuotationStatus = "Rejected"
	QuotationStatusExpired  QuotationStatus = "Expired"
)

// QuotationItem is one priced line. Amount is always Price - Discount; it is
// recomputed on every save and never trusted from the caller. A discount above
// the price yields a negative amount, which stands for a credit line and is
// stored as-is.
type QuotationItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Details     string  `json:"details"`
	Unit        string  `json:"unit"`
	Price       float64 `json:"price"`
	Discount    float64 `json:"discount"`
	Amount      float64 `json:"amount"`
}

type QuotationTerm struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type QuotationNote struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Quotation is a self-contained priced offer. The customer block is a
// denormalized snapshot, not a reference into the customers collection.
//
// Domain notes:
//   - QuotationID is a display identifier (CNQT + year + zero-padded month +
//     the last four digits of the creation unix-millis). It is not unique
//     under concurrent creation inside the same millisecond window; the
//     document id stays the primary key.
//   - GrandTotal is the sum of item amounts at save time. It is stored and a
//     later read trusts the stored value.
//
// Storage model (DynamoDB):
//   - PK: id
type Quotation struct {
	ID                 string          `json:"id"`
	QuotationID        string          `json:"quotationId"`
	QuotationDate      string          `json:"quotationDate"`
	CustomerName       string          `json:"customerName"`
	CustomerMobile     string          `json:"customerMobile"`
	CustomerAddress    string          `json:"customerAddress"`
	Status             QuotationStatus `json:"status"`
	Items              []QuotationItem `json:"items"`
	TermsAndConditions []QuotationTerm `json:"termsAndConditions"`
	Notes              []QuotationNote `json:"notes"`
	GrandTotal         float64         `json:"grandTotal"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}
