package usecase

import (
	"context"
	"errors"
	"testing"

	"clicknova_admin/internal/domain/entities"
	mock_interfaces "clicknova_admin/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestLeadUseCase_Create(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		uc := NewLeadUseCase(nil)
		_, err := uc.Create(context.Background(), entities.Lead{CustomerName: "Asha"})
		if !errors.Is(err, ErrInvalidLeadInput) {
			t.Fatalf("expected ErrInvalidLeadInput, got %v", err)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		uc := NewLeadUseCase(nil)
		_, err := uc.Create(context.Background(), entities.Lead{
			CustomerName: "Asha",
			MobileNumber: "9876543210",
			Status:       "Maybe",
		})
		if !errors.Is(err, ErrInvalidLeadStatus) {
			t.Fatalf("expected ErrInvalidLeadStatus, got %v", err)
		}
	})

	t.Run("defaults to new status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILeadRepository(ctrl)
		uc := NewLeadUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, l entities.Lead) (entities.Lead, error) {
				if l.Status != entities.LeadStatusNew {
					t.Fatalf("expected defaulted status, got %s", l.Status)
				}
				if l.ID == "" || l.CreatedAt.IsZero() {
					t.Fatalf("expected generated id and timestamps: %+v", l)
				}
				return l, nil
			},
		)

		if _, err := uc.Create(context.Background(), entities.Lead{CustomerName: "Asha", MobileNumber: "9876543210"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestLeadUseCase_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILeadRepository(ctrl)
		uc := NewLeadUseCase(repo)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Lead{}, nil)

		_, err := uc.Update(context.Background(), entities.Lead{
			ID:           "l-1",
			CustomerName: "Asha",
			MobileNumber: "9876543210",
			Status:       entities.LeadStatusFollowup,
		})
		if !errors.Is(err, ErrLeadNotFound) {
			t.Fatalf("expected ErrLeadNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILeadRepository(ctrl)
		uc := NewLeadUseCase(repo)
		expected := entities.Lead{ID: "l-1", CustomerName: "Asha", MobileNumber: "9876543210", Status: entities.LeadStatusConfirmed}
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(expected, nil)

		res, err := uc.Update(context.Background(), expected)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.LeadStatusConfirmed {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestLeadUseCase_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILeadRepository(ctrl)
		uc := NewLeadUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "l-1").Return(entities.Lead{}, nil)

		if err := uc.Delete(context.Background(), "l-1"); !errors.Is(err, ErrLeadNotFound) {
			t.Fatalf("expected ErrLeadNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILeadRepository(ctrl)
		uc := NewLeadUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "l-1").Return(entities.Lead{ID: "l-1"}, nil)
		repo.EXPECT().Delete(gomock.Any(), "l-1").Return(nil)

		if err := uc.Delete(context.Background(), "l-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
