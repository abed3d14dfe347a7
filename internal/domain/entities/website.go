package entities

import "time"

// Website submission records are produced by the public-facing site writing
// into the shared store. The admin service only reads, edits and deletes
// them; it never creates one.

type CareerSubmissionStatus string

const (
	CareerSubmissionStatusNew         CareerSubmissionStatus = "new"
	CareerSubmissionStatusReviewed    CareerSubmissionStatus = "reviewed"
	CareerSubmissionStatusShortlisted CareerSubmissionStatus = "shortlisted"
	CareerSubmissionStatusRejected    CareerSubmissionStatus = "rejected"
)

// CareerSubmission lives in the careersfromwebsite collection.
type CareerSubmission struct {
	ID            string                 `json:"id"`
	Name          string                 `json:"name"`
	Mobile        string                 `json:"mobile"`
	Email         string                 `json:"email"`
	City          string                 `json:"city"`
	ApplyingFor   string                 `json:"applyingFor"`
	Qualification string                 `json:"qualification"`
	Status        CareerSubmissionStatus `json:"status"`
	CreatedAt     time.Time              `json:"createdAt"`
	UpdatedAt     time.Time              `json:"updatedAt"`
}

type ContactSubmissionStatus string

const (
	ContactSubmissionStatusNew        ContactSubmissionStatus = "new"
	ContactSubmissionStatusContacted  ContactSubmissionStatus = "contacted"
	ContactSubmissionStatusInProgress ContactSubmissionStatus = "in-progress"
	ContactSubmissionStatusResolved   ContactSubmissionStatus = "resolved"
	ContactSubmissionStatusClosed     ContactSubmissionStatus = "closed"
)

// ContactSubmission lives in the contactsfromwebsite collection.
type ContactSubmission struct {
	ID        string                  `json:"id"`
	Name      string                  `json:"name"`
	Mobile    string                  `json:"mobile"`
	Email     string                  `json:"email"`
	City      string                  `json:"city"`
	Service   string                  `json:"service"`
	Message   string                  `json:"message"`
	Status    ContactSubmissionStatus `json:"status"`
	CreatedAt time.Time               `json:"createdAt"`
	UpdatedAt time.Time               `json:"updatedAt"`
}

type FreeQuoteSubmissionStatus string

const (
	FreeQuoteSubmissionStatusNew       FreeQuoteSubmissionStatus = "new"
	FreeQuoteSubmissionStatusQuoted    FreeQuoteSubmissionStatus = "quoted"
	FreeQuoteSubmissionStatusCompleted FreeQuoteSubmissionStatus = "completed"
	FreeQuoteSubmissionStatusRejected  FreeQuoteSubmissionStatus = "rejected"
)

// FreeQuoteSubmission lives in the freequotefromwebsite collection.
type FreeQuoteSubmission struct {
	ID        string                    `json:"id"`
	Name      string                    `json:"name"`
	Mobile    string                    `json:"mobile"`
	City      string                    `json:"city"`
	Service   string                    `json:"service"`
	Status    FreeQuoteSubmissionStatus `json:"status"`
	CreatedAt time.Time                 `json:"createdAt"`
	UpdatedAt time.Time                 `json:"updatedAt"`
}
