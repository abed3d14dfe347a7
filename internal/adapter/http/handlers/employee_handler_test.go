package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clicknova_admin/internal/adapter/http/handlers/mocks"
	"clicknova_admin/internal/domain/entities"
	"clicknova_admin/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestEmployeeHandler_GetEmployeeTarget(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(t *testing.T) (*gin.Engine, *mocks.MockIEmployeeUseCase) {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)
		uc := mocks.NewMockIEmployeeUseCase(ctrl)
		h := NewEmployeeHandler(uc)
		r := gin.New()
		r.GET("/v1/employees/:id/target", h.GetEmployeeTarget)
		return r, uc
	}

	t.Run("defaults to the all range", func(t *testing.T) {
		r, uc := newRouter(t)

		uc.EXPECT().Target(gomock.Any(), "emp-1", usecase.TargetRangeAll, time.Time{}, time.Time{}).
			Return(usecase.EmployeeTarget{
				Employee:   entities.Employee{ID: "emp-1", EmployeeName: "Arjun"},
				Range:      usecase.TargetRangeAll,
				Businesses: []entities.Business{},
			}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/employees/emp-1/target", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("parses custom window bounds", func(t *testing.T) {
		r, uc := newRouter(t)

		from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)
		uc.EXPECT().Target(gomock.Any(), "emp-1", usecase.TargetRangeCustom, from, to).
			Return(usecase.EmployeeTarget{
				Employee:    entities.Employee{ID: "emp-1"},
				Range:       usecase.TargetRangeCustom,
				TotalAmount: 4500,
				Businesses:  []entities.Business{},
			}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/employees/emp-1/target?range=custom&from=2026-02-01&to=2026-02-28", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["totalAmount"] != 4500.0 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("malformed date rejected", func(t *testing.T) {
		r, _ := newRouter(t)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/employees/emp-1/target?range=custom&from=02-2026", nil))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown range maps to 400", func(t *testing.T) {
		r, uc := newRouter(t)

		uc.EXPECT().Target(gomock.Any(), "emp-1", usecase.TargetRange("fortnight"), time.Time{}, time.Time{}).
			Return(usecase.EmployeeTarget{}, usecase.ErrInvalidTargetRange)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/employees/emp-1/target?range=fortnight", nil))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
