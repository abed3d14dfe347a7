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

// WebsiteHandler serves the three inboxes fed by the public site. There are
// no create endpoints here: the site writes submissions directly into the
// shared store and this API only triages them.
type WebsiteHandler struct {
	usecase usecase.IWebsiteUseCase
}

func NewWebsiteHandler(uc usecase.IWebsiteUseCase) *WebsiteHandler {
	return &WebsiteHandler{usecase: uc}
}

func (h *WebsiteHandler) ListCareerSubmissions(c *gin.Context) {
	submissions, err := h.usecase.ListCareerSubmissions(c.Request.Context())
	if err != nil {
		respondError(c, mapWebsiteError(err))
		return
	}

	// The careers grid predates the 24-per-page layout and still renders 48.
	page, meta := listing.Apply(submissions, listQuerySized(c, listing.LegacyPageSize, "status"), func(s entities.CareerSubmission) listing.Fields {
		return listing.Fields{
			Searchable: []string{s.Name, s.Mobile, s.Email, s.City, s.ApplyingFor},
			Filterable: map[string]string{"status": string(s.Status)},
		}
	})
	c.JSON(http.StatusOK, response.NewListResponse(page, meta))
}

func (h *WebsiteHandler) GetCareerSubmission(c *gin.Context) {
	submission, err := h.usecase.GetCareerSubmission(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapWebsiteError(err))
		return
	}
	c.JSON(http.StatusOK, submission)
}

func (h *WebsiteHandler) UpdateCareerSubmission(c *gin.Context) {
	var payload request.CareerSubmissionUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	submission, err := h.usecase.UpdateCareerSubmission(c.Request.Context(), payload.ToEntity(c.Param("id")))
	if err != nil {
		respondError(c, mapWebsiteError(err))
		return
	}
	c.JSON(http.StatusOK, submission)
}

func (h *WebsiteHandler) DeleteCareerSubmission(c *gin.Context) {
	if err := h.usecase.DeleteCareerSubmission(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, mapWebsiteError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *WebsiteHandler) ListContactSubmissions(c *gin.Context) {
	submissions, err := h.usecase.ListContactSubmissions(c.Request.Context())
	if err != nil {
		respondError(c, mapWebsiteError(err))
		return
	}

	page, meta := listing.Apply(submissions, listQuery(c, "status"), func(s entities.ContactSubmission) listing.Fields {
		return listing.Fields{
			Searchable: []string{s.Name, s.Mobile, s.Email, s.City, s.Service},
			Filterable: map[string]string{"status": string(s.Status)},
		}
	})
	c.JSON(http.StatusOK, response.NewListResponse(page, meta))
}

func (h *WebsiteHandler) GetContactSubmission(c *gin.Context) {
	submission, err := h.usecase.GetContactSubmission(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapWebsiteError(err))
		return
	}
	c.JSON(http.StatusOK, submission)
}

func (h *WebsiteHandler) UpdateContactSubmission(c *gin.Context) {
	var payload request.ContactSubmissionUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	submission, err := h.usecase.UpdateContactSubmission(c.Request.Context(), payload.ToEntity(c.Param("id")))
	if err != nil {
		respondError(c, mapWebsiteError(err))
		return
	}
	c.JSON(http.StatusOK, submission)
}

func (h *WebsiteHandler) DeleteContactSubmission(c *gin.Context) {
	if err := h.usecase.DeleteContactSubmission(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, mapWebsiteError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *WebsiteHandler) ListFreeQuoteSubmissions(c *gin.Context) {
	submissions, err := h.usecase.ListFreeQuoteSubmissions(c.Request.Context())
	if err != nil {
		respondError(c, mapWebsiteError(err))
		return
	}

	page, meta := listing.Apply(submissions, listQuery(c, "status"), func(s entities.FreeQuoteSubmission) listing.Fields {
		return listing.Fields{
			Searchable: []string{s.Name, s.Mobile, s.City, s.Service},
			Filterable: map[string]string{"status": string(s.Status)},
		}
	})
	c.JSON(http.StatusOK, response.NewListResponse(page, meta))
}

func (h *WebsiteHandler) GetFreeQuoteSubmission(c *gin.Context) {
	submission, err := h.usecase.GetFreeQuoteSubmission(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapWebsiteError(err))
		return
	}
	c.JSON(http.StatusOK, submission)
}

func (h *WebsiteHandler) UpdateFreeQuoteSubmission(c *gin.Context) {
	var payload request.FreeQuoteSubmissionUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	submission, err := h.usecase.UpdateFreeQuoteSubmission(c.Request.Context(), payload.ToEntity(c.Param("id")))
	if err != nil {
		respondError(c, mapWebsiteError(err))
		return
	}
	c.JSON(http.StatusOK, submission)
}

func (h *WebsiteHandler) DeleteFreeQuoteSubmission(c *gin.Context) {
	if err := h.usecase.DeleteFreeQuoteSubmission(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, mapWebsiteError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapWebsiteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSubmissionID),
		errors.Is(err, usecase.ErrInvalidSubmissionStatus):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSubmissionNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Submission not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
