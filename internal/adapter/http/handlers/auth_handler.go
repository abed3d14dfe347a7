package handlers

import (
	"errors"
	"net/http"

	request "clicknova_admin/internal/adapter/http/dto/request"
	response "clicknova_admin/internal/adapter/http/dto/response"
	"clicknova_admin/internal/adapter/http/middleware"
	"clicknova_admin/internal/usecase"
	"clicknova_admin/pkg"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// Login godoc
// @Summary Log in
// @Description Exchanges email and password for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body request.LoginRequest true "Credentials"
// @Success 200 {object} response.LoginResponse
// @Failure 401 {object} pkg.AppError
// @Router /v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	token, user, err := h.usecase.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		respondError(c, mapAuthError(err))
		return
	}
	c.JSON(http.StatusOK, response.LoginResponse{Token: token, User: user})
}

// Logout revokes the presented token for its remaining lifetime.
func (h *AuthHandler) Logout(c *gin.Context) {
	token := c.GetString(middleware.ContextToken)
	if err := h.usecase.Logout(c.Request.Context(), token); err != nil {
		respondError(c, mapAuthError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.usecase.Me(c.Request.Context(), c.GetString(middleware.ContextUserID))
	if err != nil {
		respondError(c, mapAuthError(err))
		return
	}
	c.JSON(http.StatusOK, user)
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAuthInput):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCredentials),
		errors.Is(err, usecase.ErrSessionRevoked):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid email or password", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "User not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
