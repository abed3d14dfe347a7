package repository

import (
	"testing"
	"time"

	"clicknova_admin/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
)

func TestQuotationItemConversion(t *testing.T) {
	q := entities.Quotation{
		ID:              "q-1",
		QuotationID:     "CNQT2026080042",
		QuotationDate:   "2026-08-01",
		CustomerName:    "Arjun Nair",
		CustomerMobile:  "9876543210",
		CustomerAddress: "MG Road, Kochi",
		Status:          entities.QuotationStatusSent,
		Items: []entities.QuotationItem{
			{ID: "i-1", Description: "Website", Details: "5 pages", Unit: "project", Price: 20000, Discount: 2000, Amount: 18000},
			{ID: "i-2", Description: "Referral credit", Price: 0, Discount: 500, Amount: -500},
		},
		TermsAndConditions: []entities.QuotationTerm{{ID: "t-1", Text: "Valid for 30 days"}},
		Notes:              []entities.QuotationNote{{ID: "n-1", Text: "Hosting billed separately"}},
		GrandTotal:         17500,
	}

	t.Run("attribute round trip preserves nested lists", func(t *testing.T) {
		av, err := attributevalue.MarshalMap(toQuotationItem(q))
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		var it quotationItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}

		got := fromQuotationItem(it)
		if got.QuotationID != q.QuotationID || got.Status != q.Status || got.GrandTotal != q.GrandTotal {
			t.Fatalf("header mismatch: %+v", got)
		}
		if len(got.Items) != 2 || got.Items[0].Amount != 18000 || got.Items[1].Amount != -500 {
			t.Fatalf("items mismatch: %+v", got.Items)
		}
		if len(got.TermsAndConditions) != 1 || got.TermsAndConditions[0].Text != "Valid for 30 days" {
			t.Fatalf("terms mismatch: %+v", got.TermsAndConditions)
		}
		if len(got.Notes) != 1 || got.Notes[0].ID != "n-1" {
			t.Fatalf("notes mismatch: %+v", got.Notes)
		}
	})

	t.Run("marshalFields strips store-owned attributes", func(t *testing.T) {
		fields, err := marshalFields(toQuotationItem(q))
		if err != nil {
			t.Fatalf("marshalFields: %v", err)
		}
		for _, owned := range []string{"id", "createdAt", "updatedAt"} {
			if _, ok := fields[owned]; ok {
				t.Fatalf("expected %q to be stripped", owned)
			}
		}
		if _, ok := fields["quotationId"]; !ok {
			t.Fatal("expected quotationId to survive")
		}
	})

	t.Run("timestamps parse from stored strings", func(t *testing.T) {
		stamp := time.Date(2026, 8, 1, 10, 30, 0, 0, time.UTC)
		got := fromQuotationItem(quotationItem{ID: "q-2", CreatedAt: stamp.Format(time.RFC3339Nano)})
		if !got.CreatedAt.Equal(stamp) {
			t.Fatalf("expected %v, got %v", stamp, got.CreatedAt)
		}
	})
}
