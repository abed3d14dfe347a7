package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"clicknova_admin/internal/domain/entities"
	"clicknova_admin/internal/usecase/interfaces"
	mock_interfaces "clicknova_admin/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestEmployeeUseCase_Create(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		uc := NewEmployeeUseCase(nil, nil)
		_, err := uc.Create(context.Background(), entities.Employee{MobileNumber: "9876543210"})
		if !errors.Is(err, ErrInvalidEmployeeInput) {
			t.Fatalf("expected ErrInvalidEmployeeInput, got %v", err)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		uc := NewEmployeeUseCase(nil, nil)
		_, err := uc.Create(context.Background(), entities.Employee{
			EmployeeName: "Ravi",
			MobileNumber: "9876543210",
			Status:       "Whatever",
		})
		if !errors.Is(err, ErrInvalidEmployeeStatus) {
			t.Fatalf("expected ErrInvalidEmployeeStatus, got %v", err)
		}
	})

	t.Run("assigns a reserved 8 digit id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		employees := mock_interfaces.NewMockIEmployeeRepository(ctrl)
		uc := NewEmployeeUseCase(employees, nil)

		var reserved string
		employees.EXPECT().ExistsByEmployeeID(gomock.Any(), gomock.Any()).Return(false, nil)
		employees.EXPECT().ReserveEmployeeID(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, id string) error {
				reserved = id
				return nil
			},
		)
		employees.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Employee) (entities.Employee, error) {
				if len(e.EmployeeID) != 8 {
					t.Fatalf("expected an 8 digit employee id, got %q", e.EmployeeID)
				}
				if e.EmployeeID != reserved {
					t.Fatalf("employee id %s does not match reservation %s", e.EmployeeID, reserved)
				}
				if e.Status != entities.EmployeeStatusActive {
					t.Fatalf("expected defaulted active status, got %s", e.Status)
				}
				return e, nil
			},
		)

		res, err := uc.Create(context.Background(), entities.Employee{
			EmployeeName: "Ravi",
			MobileNumber: "9876543210",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated document id")
		}
	})

	t.Run("redraws on taken id and lost reservation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		employees := mock_interfaces.NewMockIEmployeeRepository(ctrl)
		uc := NewEmployeeUseCase(employees, nil)

		// First candidate is already in use, second loses the reservation
		// race, third goes through.
		gomock.InOrder(
			employees.EXPECT().ExistsByEmployeeID(gomock.Any(), gomock.Any()).Return(true, nil),
			employees.EXPECT().ExistsByEmployeeID(gomock.Any(), gomock.Any()).Return(false, nil),
			employees.EXPECT().ReserveEmployeeID(gomock.Any(), gomock.Any()).Return(interfaces.ErrEmployeeIDTaken),
			employees.EXPECT().ExistsByEmployeeID(gomock.Any(), gomock.Any()).Return(false, nil),
			employees.EXPECT().ReserveEmployeeID(gomock.Any(), gomock.Any()).Return(nil),
		)
		employees.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Employee) (entities.Employee, error) { return e, nil },
		)

		if _, err := uc.Create(context.Background(), entities.Employee{EmployeeName: "Ravi", MobileNumber: "9876543210"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("gives up after exhausting draws", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		employees := mock_interfaces.NewMockIEmployeeRepository(ctrl)
		uc := NewEmployeeUseCase(employees, nil)

		employees.EXPECT().ExistsByEmployeeID(gomock.Any(), gomock.Any()).Return(true, nil).Times(maxEmployeeIDDraws)

		_, err := uc.Create(context.Background(), entities.Employee{EmployeeName: "Ravi", MobileNumber: "9876543210"})
		if !errors.Is(err, ErrEmployeeIDExhausted) {
			t.Fatalf("expected ErrEmployeeIDExhausted, got %v", err)
		}
	})

	t.Run("releases the reservation when the write fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		employees := mock_interfaces.NewMockIEmployeeRepository(ctrl)
		uc := NewEmployeeUseCase(employees, nil)

		var reserved string
		employees.EXPECT().ExistsByEmployeeID(gomock.Any(), gomock.Any()).Return(false, nil)
		employees.EXPECT().ReserveEmployeeID(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, id string) error {
				reserved = id
				return nil
			},
		)
		employees.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Employee{}, errors.New("db"))
		employees.EXPECT().ReleaseEmployeeID(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, id string) error {
				if id != reserved {
					t.Fatalf("released %s, reserved %s", id, reserved)
				}
				return nil
			},
		)

		_, err := uc.Create(context.Background(), entities.Employee{EmployeeName: "Ravi", MobileNumber: "9876543210"})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestEmployeeUseCase_Update(t *testing.T) {
	t.Run("generated id is immutable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		employees := mock_interfaces.NewMockIEmployeeRepository(ctrl)
		uc := NewEmployeeUseCase(employees, nil)

		employees.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.Employee{ID: "e-1", EmployeeID: "12345678"}, nil)
		employees.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Employee) (entities.Employee, error) {
				if e.EmployeeID != "12345678" {
					t.Fatalf("employee id must not change, got %s", e.EmployeeID)
				}
				return e, nil
			},
		)

		_, err := uc.Update(context.Background(), entities.Employee{
			ID:           "e-1",
			EmployeeID:   "99999999",
			EmployeeName: "Ravi",
			MobileNumber: "9876543210",
			Status:       entities.EmployeeStatusActive,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		employees := mock_interfaces.NewMockIEmployeeRepository(ctrl)
		uc := NewEmployeeUseCase(employees, nil)
		employees.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.Employee{}, nil)

		_, err := uc.Update(context.Background(), entities.Employee{ID: "e-1", EmployeeName: "Ravi", MobileNumber: "9876543210", Status: entities.EmployeeStatusInactive})
		if !errors.Is(err, ErrEmployeeNotFound) {
			t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		uc := NewEmployeeUseCase(nil, nil)
		_, err := uc.Update(context.Background(), entities.Employee{ID: "e-1", EmployeeName: "Ravi", MobileNumber: "9876543210", Status: "Retired"})
		if !errors.Is(err, ErrInvalidEmployeeStatus) {
			t.Fatalf("expected ErrInvalidEmployeeStatus, got %v", err)
		}
	})
}

func TestEmployeeUseCase_Delete(t *testing.T) {
	t.Run("removes businesses and the id reservation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		employees := mock_interfaces.NewMockIEmployeeRepository(ctrl)
		businesses := mock_interfaces.NewMockIBusinessRepository(ctrl)
		uc := NewEmployeeUseCase(employees, businesses)

		employees.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.Employee{ID: "e-1", EmployeeID: "12345678"}, nil)
		businesses.EXPECT().ListByEmployeeID(gomock.Any(), "e-1").Return([]entities.Business{{ID: "b-1"}, {ID: "b-2"}}, nil)
		businesses.EXPECT().Delete(gomock.Any(), "b-1").Return(nil)
		businesses.EXPECT().Delete(gomock.Any(), "b-2").Return(nil)
		employees.EXPECT().Delete(gomock.Any(), "e-1").Return(nil)
		employees.EXPECT().ReleaseEmployeeID(gomock.Any(), "12345678").Return(nil)

		if err := uc.Delete(context.Background(), "e-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestEmployeeUseCase_Target(t *testing.T) {
	fixed := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)

	newUC := func(ctrl *gomock.Controller, all []entities.Business) *EmployeeUseCase {
		employees := mock_interfaces.NewMockIEmployeeRepository(ctrl)
		businesses := mock_interfaces.NewMockIBusinessRepository(ctrl)
		employees.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.Employee{ID: "e-1"}, nil)
		businesses.EXPECT().ListByEmployeeID(gomock.Any(), "e-1").Return(all, nil)
		uc := NewEmployeeUseCase(employees, businesses)
		uc.now = func() time.Time { return fixed }
		return uc
	}

	entries := []entities.Business{
		{ID: "b-1", Amount: 100, CreatedAt: time.Date(2026, time.August, 3, 0, 0, 0, 0, time.UTC)},
		{ID: "b-2", Amount: 200, CreatedAt: time.Date(2026, time.July, 20, 0, 0, 0, 0, time.UTC)},
		{ID: "b-3", Amount: 400, CreatedAt: time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)},
	}

	cases := []struct {
		name  string
		r     TargetRange
		total float64
		count int
	}{
		{name: "all", r: TargetRangeAll, total: 700, count: 3},
		{name: "this month", r: TargetRangeThisMonth, total: 100, count: 1},
		{name: "last month", r: TargetRangeLastMonth, total: 200, count: 1},
		{name: "this year", r: TargetRangeThisYear, total: 300, count: 2},
		{name: "last year", r: TargetRangeLastYear, total: 400, count: 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := newUC(ctrl, entries)

			target, err := uc.Target(context.Background(), "e-1", tc.r, time.Time{}, time.Time{})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if target.TotalAmount != tc.total {
				t.Fatalf("expected total %v, got %v", tc.total, target.TotalAmount)
			}
			if len(target.Businesses) != tc.count {
				t.Fatalf("expected %d entries, got %d", tc.count, len(target.Businesses))
			}
		})
	}

	t.Run("custom window is end inclusive", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := newUC(ctrl, entries)

		from := time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, time.August, 3, 0, 0, 0, 0, time.UTC)
		target, err := uc.Target(context.Background(), "e-1", TargetRangeCustom, from, to)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if target.TotalAmount != 300 {
			t.Fatalf("expected total 300, got %v", target.TotalAmount)
		}
	})

	t.Run("custom window without bounds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		employees := mock_interfaces.NewMockIEmployeeRepository(ctrl)
		employees.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.Employee{ID: "e-1"}, nil)
		uc := NewEmployeeUseCase(employees, nil)

		_, err := uc.Target(context.Background(), "e-1", TargetRangeCustom, time.Time{}, time.Time{})
		if !errors.Is(err, ErrInvalidTargetRange) {
			t.Fatalf("expected ErrInvalidTargetRange, got %v", err)
		}
	})

	t.Run("unknown range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		employees := mock_interfaces.NewMockIEmployeeRepository(ctrl)
		employees.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.Employee{ID: "e-1"}, nil)
		uc := NewEmployeeUseCase(employees, nil)

		_, err := uc.Target(context.Background(), "e-1", "quarter", time.Time{}, time.Time{})
		if !errors.Is(err, ErrInvalidTargetRange) {
			t.Fatalf("expected ErrInvalidTargetRange, got %v", err)
		}
	})
}
