package entities

import "time"

// LeadStatus tracks a prospect through the follow-up funnel. The values are
// the exact strings the dashboard filters on.

type LeadStatus string

const (
	LeadStatusNew                 LeadStatus = "New"
	LeadStatusFollowup            LeadStatus = "Followup"
	LeadStatusNotReachable        LeadStatus = "Not Reachable"
	LeadStatusContacted           LeadStatus = "Contacted"
	LeadStatusDetailsSent         LeadStatus = "Details send in Whatsapp"
	LeadStatusMoreChanges         LeadStatus = "More Changes to be Customer"
	LeadStatusConfirmed           LeadStatus = "Confirmed"
	LeadStatusConvertedToCustomer LeadStatus = "Customer"
)

// Lead is a pre-conversion prospect persisted in the leads collection.
//
// Storage model (DynamoDB):
//   - PK: id
type Lead struct {
	ID           string     `json:"id"`
	Status       LeadStatus `json:"status"`
	CustomerName string     `json:"customerName"`
	MobileNumber string     `json:"mobileNumber"`
	Address      string     `json:"address"`
	Requirement  string     `json:"requirement"`
	FollowupDate string     `json:"followupDate"`
	FollowupTime string     `json:"followupTime"`
	Comments     string     `json:"comments"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}
