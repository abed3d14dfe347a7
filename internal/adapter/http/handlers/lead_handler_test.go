package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
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

func TestLeadHandler_CreateLead(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		r := gin.New()
		r.POST("/v1/leads", h.CreateLead)

		req := httptest.NewRequest(http.MethodPost, "/v1/leads", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase returns mapped error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		r := gin.New()
		r.POST("/v1/leads", h.CreateLead)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Lead{}, usecase.ErrInvalidLeadStatus)

		req := httptest.NewRequest(http.MethodPost, "/v1/leads", bytes.NewBufferString(`{"customerName":"Arjun","mobileNumber":"9876543210","status":"Bogus"}`))
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
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		r := gin.New()
		r.POST("/v1/leads", h.CreateLead)

		now := time.Now().UTC()
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Lead{ID: "lead-1", CustomerName: "Arjun", MobileNumber: "9876543210", Status: entities.LeadStatusNew, CreatedAt: now, UpdatedAt: now}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/leads", bytes.NewBufferString(`{"customerName":"Arjun","mobileNumber":"9876543210"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "lead-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestLeadHandler_ListLeads(t *testing.T) {
	gin.SetMode(gin.TestMode)

	leads := []entities.Lead{
		{ID: "l-1", CustomerName: "Arjun Nair", MobileNumber: "9876543210", Status: entities.LeadStatusNew},
		{ID: "l-2", CustomerName: "Divya Menon", MobileNumber: "9123456780", Status: entities.LeadStatusConfirmed},
		{ID: "l-3", CustomerName: "Arjun Pillai", MobileNumber: "9988776655", Status: entities.LeadStatusConfirmed},
	}

	newRouter := func(t *testing.T) (*gin.Engine, *mocks.MockILeadUseCase) {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)
		r := gin.New()
		r.GET("/v1/leads", h.ListLeads)
		return r, uc
	}

	t.Run("plain list wraps data and meta", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.EXPECT().List(gomock.Any()).Return(leads, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/leads", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Data []entities.Lead `json:"data"`
			Meta struct {
				Total    int `json:"total"`
				PageSize int `json:"pageSize"`
			} `json:"meta"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if len(body.Data) != 3 || body.Meta.Total != 3 {
			t.Fatalf("unexpected list body: %s", w.Body.String())
		}
		if body.Meta.PageSize != 24 {
			t.Fatalf("expected default page size 24, got %d", body.Meta.PageSize)
		}
	})

	t.Run("search narrows by name", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.EXPECT().List(gomock.Any()).Return(leads, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/leads?search=arjun", nil))

		var body struct {
			Data []entities.Lead `json:"data"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body.Data) != 2 {
			t.Fatalf("expected 2 matches, got %d: %s", len(body.Data), w.Body.String())
		}
	})

	t.Run("status filter with All sentinel disabled", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.EXPECT().List(gomock.Any()).Return(leads, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/leads?status=All", nil))

		var body struct {
			Data []entities.Lead `json:"data"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body.Data) != 3 {
			t.Fatalf("expected All to disable the filter, got %d", len(body.Data))
		}
	})

	t.Run("status filter matches exactly", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.EXPECT().List(gomock.Any()).Return(leads, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/leads?status=Confirmed", nil))

		var body struct {
			Data []entities.Lead `json:"data"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body.Data) != 2 {
			t.Fatalf("expected 2 confirmed leads, got %d", len(body.Data))
		}
	})

	t.Run("list failure maps to 500", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.EXPECT().List(gomock.Any()).Return(nil, errors.New("boom"))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/leads", nil))

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestLeadHandler_GetUpdateDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		r := gin.New()
		r.GET("/v1/leads/:id", h.GetLead)

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Lead{}, usecase.ErrLeadNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/leads/missing", nil))

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("update passes path id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		r := gin.New()
		r.PUT("/v1/leads/:id", h.UpdateLead)

		uc.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, l entities.Lead) (entities.Lead, error) {
			if l.ID != "lead-1" {
				t.Fatalf("expected path id on entity, got %q", l.ID)
			}
			return l, nil
		})

		req := httptest.NewRequest(http.MethodPut, "/v1/leads/lead-1", bytes.NewBufferString(`{"customerName":"Arjun","mobileNumber":"9876543210","status":"Contacted"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("delete success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		r := gin.New()
		r.DELETE("/v1/leads/:id", h.DeleteLead)

		uc.EXPECT().Delete(gomock.Any(), "lead-1").Return(nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/v1/leads/lead-1", nil))

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}
