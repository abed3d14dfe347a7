package handlers

import (
	"errors"
	"net/http"

	request "clicknova_admin/internal/adapter/http/dto/request"
	response "clicknova_admin/internal/adapter/http/dto/response"
	"clicknova_admin/internal/domain/entities"
	"clicknova_admin/internal/domain/listing"
	"clicknova_admin/internal/usecase"
	"clicknova_admin/pkg"

	"github.com/gin-gonic/gin"
)

type CareerHandler struct {
	usecase usecase.ICareerRequestUseCase
}

func NewCareerHandler(uc usecase.ICareerRequestUseCase) *CareerHandler {
	return &CareerHandler{usecase: uc}
}

func (h *CareerHandler) CreateCareerRequest(c *gin.Context) {
	var payload request.CareerRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	req, err := h.usecase.Create(c.Request.Context(), payload.ToEntity(""))
	if err != nil {
		respondError(c, mapCareerError(err))
		return
	}
	c.JSON(http.StatusCreated, req)
}

func (h *CareerHandler) ListCareerRequests(c *gin.Context) {
	requests, err := h.usecase.List(c.Request.Context())
	if err != nil {
		respondError(c, mapCareerError(err))
		return
	}

	page, meta := listing.Apply(requests, listQuery(c, "requestedFor"), func(r entities.CareerRequest) listing.Fields {
		return listing.Fields{
			Searchable: []string{r.EmployeeName, r.MobileNumber, r.RequestedFor},
			Filterable: map[string]string{"requestedFor": r.RequestedFor},
		}
	})
	c.JSON(http.StatusOK, response.NewListResponse(page, meta))
}

// ListCareerRoles serves the role dropdown options.
func (h *CareerHandler) ListCareerRoles(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.usecase.Roles()})
}

func (h *CareerHandler) GetCareerRequest(c *gin.Context) {
	req, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapCareerError(err))
		return
	}
	c.JSON(http.StatusOK, req)
}

func (h *CareerHandler) UpdateCareerRequest(c *gin.Context) {
	var payload request.CareerRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	req, err := h.usecase.Update(c.Request.Context(), payload.ToEntity(c.Param("id")))
	if err != nil {
		respondError(c, mapCareerError(err))
		return
	}
	c.JSON(http.StatusOK, req)
}

func (h *CareerHandler) DeleteCareerRequest(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, mapCareerError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapCareerError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCareerRequestID),
		errors.Is(err, usecase.ErrInvalidCareerInput),
		errors.Is(err, usecase.ErrInvalidCareerRole),
		errors.Is(err, usecase.ErrInvalidCareerRating):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCareerRequestNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Career request not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
