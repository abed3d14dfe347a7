package middleware

import (
	"net/http"
	"strings"

	"clicknova_admin/internal/usecase"
	"clicknova_admin/pkg"

	"github.com/gin-gonic/gin"
)

// Context keys set for downstream handlers after a successful check.
const (
	ContextUserID  = "auth.userID"
	ContextEmail   = "auth.email"
	ContextRole    = "auth.role"
	ContextTokenID = "auth.tokenID"
	ContextToken   = "auth.token"
)

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid credentials", http.StatusUnauthorized)

// RequireAuth verifies the bearer token and rejects revoked sessions.
func RequireAuth(auth usecase.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		claims, err := auth.Verify(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextRole, claims.Role)
		c.Set(ContextTokenID, claims.TokenID)
		c.Set(ContextToken, token)
		c.Next()
	}
}

// bearerToken reads the Authorization header, falling back to the
// access_token query parameter because EventSource cannot set headers.
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return strings.TrimSpace(c.Query("access_token"))
}
