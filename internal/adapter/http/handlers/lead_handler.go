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

type LeadHandler struct {
	usecase usecase.ILeadUseCase
}

func NewLeadHandler(uc usecase.ILeadUseCase) *LeadHandler {
	return &LeadHandler{usecase: uc}
}

// CreateLead godoc
// @Summary Create a lead
// @Tags leads
// @Accept json
// @Produce json
// @Param lead body request.LeadRequest true "Lead"
// @Success 201 {object} entities.Lead
// @Router /leads [post]
func (h *LeadHandler) CreateLead(c *gin.Context) {
	var payload request.LeadRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	lead, err := h.usecase.Create(c.Request.Context(), payload.ToEntity(""))
	if err != nil {
		respondError(c, mapLeadError(err))
		return
	}
	c.JSON(http.StatusCreated, lead)
}

// ListLeads godoc
// @Summary List leads with search, status filter and pagination
// @Tags leads
// @Produce json
// @Param search query string false "Substring search over name, mobile and requirement"
// @Param status query string false "Status filter; All disables it"
// @Param page query int false "1-based page"
// @Success 200 {object} response.ListResponse[entities.Lead]
// @Router /leads [get]
func (h *LeadHandler) ListLeads(c *gin.Context) {
	leads, err := h.usecase.List(c.Request.Context())
	if err != nil {
		respondError(c, mapLeadError(err))
		return
	}

	page, meta := listing.Apply(leads, listQuery(c, "status"), func(l entities.Lead) listing.Fields {
		return listing.Fields{
			Searchable: []string{l.CustomerName, l.MobileNumber, l.Requirement, l.Address},
			Filterable: map[string]string{"status": string(l.Status)},
		}
	})
	c.JSON(http.StatusOK, response.NewListResponse(page, meta))
}

func (h *LeadHandler) GetLead(c *gin.Context) {
	lead, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapLeadError(err))
		return
	}
	c.JSON(http.StatusOK, lead)
}

func (h *LeadHandler) UpdateLead(c *gin.Context) {
	var payload request.LeadRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	lead, err := h.usecase.Update(c.Request.Context(), payload.ToEntity(c.Param("id")))
	if err != nil {
		respondError(c, mapLeadError(err))
		return
	}
	c.JSON(http.StatusOK, lead)
}

func (h *LeadHandler) DeleteLead(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, mapLeadError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapLeadError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidLeadID),
		errors.Is(err, usecase.ErrInvalidLeadInput),
		errors.Is(err, usecase.ErrInvalidLeadStatus):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLeadNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Lead not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
