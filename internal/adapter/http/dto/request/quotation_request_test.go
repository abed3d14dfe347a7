package request

import (
	"testing"

	"clicknova_admin/internal/domain/entities"
)

func TestQuotationRequestToEntity(t *testing.T) {
	r := QuotationRequest{
		QuotationDate:  "2026-08-01",
		CustomerName:   "Arjun Nair",
		CustomerMobile: "9876543210",
		Status:         "Sent",
		Items: []QuotationItemRequest{
			{Description: "Website", Unit: "project", Price: 20000, Discount: 2000},
		},
		TermsAndConditions: []QuotationTextItemRequest{{ID: "t-1", Text: "Valid for 30 days"}},
		Notes:              []QuotationTextItemRequest{{Text: "Hosting billed separately"}},
	}

	q := r.ToEntity("q-1")

	if q.ID != "q-1" || q.Status != entities.QuotationStatusSent {
		t.Fatalf("unexpected header: %+v", q)
	}
	if len(q.Items) != 1 || q.Items[0].Price != 20000 || q.Items[0].Discount != 2000 {
		t.Fatalf("unexpected items: %+v", q.Items)
	}
	if q.Items[0].Amount != 0 {
		t.Fatalf("amount must not be taken from the payload, got %v", q.Items[0].Amount)
	}
	if len(q.TermsAndConditions) != 1 || q.TermsAndConditions[0].Text != "Valid for 30 days" {
		t.Fatalf("unexpected terms: %+v", q.TermsAndConditions)
	}
	if len(q.Notes) != 1 || q.Notes[0].ID != "" {
		t.Fatalf("unexpected notes: %+v", q.Notes)
	}
}

func TestEmployeeRequestToEntity(t *testing.T) {
	r := EmployeeRequest{
		EmployeeName: "Divya Menon",
		MobileNumber: "9123456780",
		Status:       "Active",
		AadharNumber: "123412341234",
	}

	e := r.ToEntity("emp-1")

	if e.ID != "emp-1" || e.Status != entities.EmployeeStatusActive {
		t.Fatalf("unexpected entity: %+v", e)
	}
	if e.EmployeeID != "" {
		t.Fatalf("employee number must never come from the payload, got %q", e.EmployeeID)
	}
}
