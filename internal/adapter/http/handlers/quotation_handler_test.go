package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"clicknova_admin/internal/adapter/http/handlers/mocks"
	"clicknova_admin/internal/domain/entities"
	"clicknova_admin/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestQuotationHandler_CreateQuotation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.POST("/v1/quotations", h.CreateQuotation)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotations", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing items rejected at binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.POST("/v1/quotations", h.CreateQuotation)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotations", bytes.NewBufferString(`{"customerName":"Arjun","items":[]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.POST("/v1/quotations", h.CreateQuotation)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, q entities.Quotation) (entities.Quotation, error) {
			if len(q.Items) != 1 || q.Items[0].Price != 1000 {
				t.Fatalf("unexpected entity passed to usecase: %+v", q)
			}
			q.ID = "q-1"
			q.QuotationID = "CNQT2026080042"
			q.GrandTotal = 900
			return q, nil
		})

		payload := `{"customerName":"Arjun","customerMobile":"9876543210","items":[{"description":"Website","price":1000,"discount":100}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotations", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["quotationId"] != "CNQT2026080042" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestQuotationHandler_PrintQuotation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.GET("/v1/quotations/:id/print", h.PrintQuotation)

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Quotation{}, usecase.ErrQuotationNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/quotations/missing/print", nil))

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("renders html document", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.GET("/v1/quotations/:id/print", h.PrintQuotation)

		uc.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quotation{
			ID:            "q-1",
			QuotationID:   "CNQT2026080042",
			QuotationDate: "2026-08-01",
			CustomerName:  "Arjun Nair",
			Status:        entities.QuotationStatusDraft,
			Items: []entities.QuotationItem{
				{ID: "i-1", Description: "Website", Price: 1000, Discount: 100, Amount: 900},
			},
			TermsAndConditions: []entities.QuotationTerm{{ID: "t-1", Text: "Valid for 30 days"}},
			GrandTotal:         900,
		}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/quotations/q-1/print", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
			t.Fatalf("expected html content type, got %q", ct)
		}
		html := w.Body.String()
		for _, want := range []string{"CNQT2026080042", "Arjun Nair", "Website", "900.00", "Valid for 30 days"} {
			if !strings.Contains(html, want) {
				t.Fatalf("rendered document missing %q", want)
			}
		}
	})
}

func TestQuotationHandler_ListQuotations(t *testing.T) {
	gin.SetMode(gin.TestMode)

	quotations := []entities.Quotation{
		{ID: "q-1", QuotationID: "CNQT2026080001", CustomerName: "Arjun", Status: entities.QuotationStatusDraft},
		{ID: "q-2", QuotationID: "CNQT2026080002", CustomerName: "Divya", Status: entities.QuotationStatusSent},
	}

	t.Run("filters by status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.GET("/v1/quotations", h.ListQuotations)

		uc.EXPECT().List(gomock.Any()).Return(quotations, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/quotations?status=Sent", nil))

		var body struct {
			Data []entities.Quotation `json:"data"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body.Data) != 1 || body.Data[0].ID != "q-2" {
			t.Fatalf("unexpected filtered body: %s", w.Body.String())
		}
	})

	t.Run("searches by display id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.GET("/v1/quotations", h.ListQuotations)

		uc.EXPECT().List(gomock.Any()).Return(quotations, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/quotations?search=0001", nil))

		var body struct {
			Data []entities.Quotation `json:"data"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body.Data) != 1 || body.Data[0].ID != "q-1" {
			t.Fatalf("unexpected search body: %s", w.Body.String())
		}
	})
}
