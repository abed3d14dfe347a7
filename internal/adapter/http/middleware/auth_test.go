package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"clicknova_admin/internal/adapter/http/handlers/mocks"
	"clicknova_admin/internal/usecase"
	"clicknova_admin/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newProtectedRouter(auth usecase.IAuthUseCase) *gin.Engine {
	r := gin.New()
	r.GET("/protected", RequireAuth(auth), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userId": c.GetString(ContextUserID),
			"email":  c.GetString(ContextEmail),
		})
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	claims := interfaces.TokenClaims{TokenID: "jti-1", UserID: "u-1", Email: "admin@clicknova.in", Role: "admin"}

	t.Run("missing token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		auth := mocks.NewMockIAuthUseCase(ctrl)
		r := newProtectedRouter(auth)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("bearer header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		auth := mocks.NewMockIAuthUseCase(ctrl)
		r := newProtectedRouter(auth)

		auth.EXPECT().Verify(gomock.Any(), "tok-1").Return(claims, nil)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer tok-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("access_token query fallback", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		auth := mocks.NewMockIAuthUseCase(ctrl)
		r := newProtectedRouter(auth)

		auth.EXPECT().Verify(gomock.Any(), "tok-2").Return(claims, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected?access_token=tok-2", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("revoked session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		auth := mocks.NewMockIAuthUseCase(ctrl)
		r := newProtectedRouter(auth)

		auth.EXPECT().Verify(gomock.Any(), "tok-3").Return(interfaces.TokenClaims{}, usecase.ErrSessionRevoked)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer tok-3")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}
