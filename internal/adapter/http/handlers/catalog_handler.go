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

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

func (h *CatalogHandler) CreateCatalogService(c *gin.Context) {
	var payload request.CatalogServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	service, err := h.usecase.Create(c.Request.Context(), payload.ToEntity(""))
	if err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusCreated, service)
}

func (h *CatalogHandler) ListCatalogServices(c *gin.Context) {
	services, err := h.usecase.List(c.Request.Context())
	if err != nil {
		respondError(c, mapCatalogError(err))
		return
	}

	page, meta := listing.Apply(services, listQuery(c), func(s entities.CatalogService) listing.Fields {
		return listing.Fields{Searchable: []string{s.ServiceName}}
	})
	c.JSON(http.StatusOK, response.NewListResponse(page, meta))
}

func (h *CatalogHandler) GetCatalogService(c *gin.Context) {
	service, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, service)
}

func (h *CatalogHandler) UpdateCatalogService(c *gin.Context) {
	var payload request.CatalogServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	service, err := h.usecase.Update(c.Request.Context(), payload.ToEntity(c.Param("id")))
	if err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, service)
}

func (h *CatalogHandler) DeleteCatalogService(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCatalogServiceID),
		errors.Is(err, usecase.ErrInvalidCatalogInput):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCatalogServiceNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Catalog service not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
