package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"clicknova_admin/internal/domain/entities"
	mock_interfaces "clicknova_admin/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestQuotationUseCase_Create(t *testing.T) {
	t.Run("missing customer name", func(t *testing.T) {
		uc := NewQuotationUseCase(nil)
		_, err := uc.Create(context.Background(), entities.Quotation{
			Items: []entities.QuotationItem{{Description: "Website", Price: 100}},
		})
		if !errors.Is(err, ErrInvalidQuotationInput) {
			t.Fatalf("expected ErrInvalidQuotationInput, got %v", err)
		}
	})

	t.Run("missing items", func(t *testing.T) {
		uc := NewQuotationUseCase(nil)
		_, err := uc.Create(context.Background(), entities.Quotation{CustomerName: "Asha"})
		if !errors.Is(err, ErrInvalidQuotationInput) {
			t.Fatalf("expected ErrInvalidQuotationInput, got %v", err)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		uc := NewQuotationUseCase(nil)
		_, err := uc.Create(context.Background(), entities.Quotation{
			CustomerName: "Asha",
			Status:       "Whatever",
			Items:        []entities.QuotationItem{{Description: "Website", Price: 100}},
		})
		if !errors.Is(err, ErrInvalidQuotationStatus) {
			t.Fatalf("expected ErrInvalidQuotationStatus, got %v", err)
		}
	})

	t.Run("recomputes amounts and grand total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := NewQuotationUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quotation{})).DoAndReturn(
			func(_ context.Context, q entities.Quotation) (entities.Quotation, error) {
				if q.Items[0].Amount != 900 {
					t.Fatalf("expected amount 900, got %v", q.Items[0].Amount)
				}
				if q.Items[1].Amount != 500 {
					t.Fatalf("expected amount 500, got %v", q.Items[1].Amount)
				}
				if q.GrandTotal != 1400 {
					t.Fatalf("expected grand total 1400, got %v", q.GrandTotal)
				}
				if q.ID == "" || q.Items[0].ID == "" || q.Items[1].ID == "" {
					t.Fatalf("expected generated ids: %+v", q)
				}
				if q.Status != entities.QuotationStatusDraft {
					t.Fatalf("expected draft status, got %s", q.Status)
				}
				return q, nil
			},
		)

		res, err := uc.Create(context.Background(), entities.Quotation{
			CustomerName: "Asha",
			Items: []entities.QuotationItem{
				// Caller-sent amounts and totals are discarded.
				{Description: "Website", Price: 1000, Discount: 100, Amount: 9999},
				{Description: "SEO", Price: 500},
			},
			GrandTotal: 123456,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.GrandTotal != 1400 {
			t.Fatalf("expected grand total 1400, got %v", res.GrandTotal)
		}
	})

	t.Run("discount above price yields negative amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := NewQuotationUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quotation) (entities.Quotation, error) {
				if q.Items[0].Amount != -200 {
					t.Fatalf("expected amount -200, got %v", q.Items[0].Amount)
				}
				if q.GrandTotal != 300 {
					t.Fatalf("expected grand total 300, got %v", q.GrandTotal)
				}
				return q, nil
			},
		)

		_, err := uc.Create(context.Background(), entities.Quotation{
			CustomerName: "Asha",
			Items: []entities.QuotationItem{
				{Description: "Adjustment", Price: 100, Discount: 300},
				{Description: "Website", Price: 500},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("display id format", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := NewQuotationUseCase(repo)
		fixed := time.Date(2026, time.March, 7, 10, 30, 0, 0, time.UTC)
		uc.now = func() time.Time { return fixed }

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quotation) (entities.Quotation, error) { return q, nil },
		)

		res, err := uc.Create(context.Background(), entities.Quotation{
			CustomerName: "Asha",
			Items:        []entities.QuotationItem{{Description: "Website", Price: 100}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := fmt.Sprintf("CNQT202603%04d", fixed.UnixMilli()%10000)
		if res.QuotationID != want {
			t.Fatalf("expected %s, got %s", want, res.QuotationID)
		}
		if res.QuotationDate != "2026-03-07" {
			t.Fatalf("expected defaulted quotation date, got %s", res.QuotationDate)
		}
	})
}

func TestQuotationUseCase_Update(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewQuotationUseCase(nil)
		_, err := uc.Update(context.Background(), entities.Quotation{
			CustomerName: "Asha",
			Status:       entities.QuotationStatusDraft,
			Items:        []entities.QuotationItem{{Description: "Website", Price: 100}},
		})
		if !errors.Is(err, ErrInvalidQuotationID) {
			t.Fatalf("expected ErrInvalidQuotationID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := NewQuotationUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quotation{}, nil)

		_, err := uc.Update(context.Background(), entities.Quotation{
			ID:           "q-1",
			CustomerName: "Asha",
			Status:       entities.QuotationStatusSent,
			Items:        []entities.QuotationItem{{Description: "Website", Price: 100}},
		})
		if !errors.Is(err, ErrQuotationNotFound) {
			t.Fatalf("expected ErrQuotationNotFound, got %v", err)
		}
	})

	t.Run("keeps display id and reprices", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := NewQuotationUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quotation{ID: "q-1", QuotationID: "CNQT2026011234"}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quotation) (entities.Quotation, error) {
				if q.QuotationID != "CNQT2026011234" {
					t.Fatalf("display id must survive updates, got %s", q.QuotationID)
				}
				if q.GrandTotal != 250 {
					t.Fatalf("expected grand total 250, got %v", q.GrandTotal)
				}
				return q, nil
			},
		)

		_, err := uc.Update(context.Background(), entities.Quotation{
			ID:           "q-1",
			QuotationID:  "CNQT9999999999",
			CustomerName: "Asha",
			Status:       entities.QuotationStatusSent,
			Items:        []entities.QuotationItem{{ID: "i-1", Description: "Website", Price: 300, Discount: 50}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQuotationUseCase_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := NewQuotationUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quotation{}, nil)

		if err := uc.Delete(context.Background(), "q-1"); !errors.Is(err, ErrQuotationNotFound) {
			t.Fatalf("expected ErrQuotationNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := NewQuotationUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quotation{ID: "q-1"}, nil)
		repo.EXPECT().Delete(gomock.Any(), "q-1").Return(nil)

		if err := uc.Delete(context.Background(), " q-1 "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
