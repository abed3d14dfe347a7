package handlers

import (
	"bytes"
	_ "embed"
	"errors"
	"html/template"
	"net/http"

	request "clicknova_admin/internal/adapter/http/dto/request"
	response "clicknova_admin/internal/adapter/http/dto/response"
	"clicknova_admin/internal/domain/entities"
	"clicknova_admin/internal/domain/listing"
	"clicknova_admin/internal/usecase"
	"clicknova_admin/pkg"

	"github.com/gin-gonic/gin"
)

//go:embed quotation_print.html.tmpl
var quotationPrintTemplate string

type QuotationHandler struct {
	usecase  usecase.IQuotationUseCase
	printTpl *template.Template
}

func NewQuotationHandler(uc usecase.IQuotationUseCase) *QuotationHandler {
	return &QuotationHandler{
		usecase:  uc,
		printTpl: template.Must(template.New("quotation").Parse(quotationPrintTemplate)),
	}
}

// CreateQuotation godoc
// @Summary Create a quotation
// @Description Prices every line (amount = price - discount), computes the grand total and assigns the CNQT display id
// @Tags quotations
// @Accept json
// @Produce json
// @Param quotation body request.QuotationRequest true "Quotation payload"
// @Success 201 {object} entities.Quotation
// @Failure 400 {object} pkg.AppError
// @Router /v1/quotations [post]
func (h *QuotationHandler) CreateQuotation(c *gin.Context) {
	var payload request.QuotationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	quotation, err := h.usecase.Create(c.Request.Context(), payload.ToEntity(""))
	if err != nil {
		respondError(c, mapQuotationError(err))
		return
	}
	c.JSON(http.StatusCreated, quotation)
}

func (h *QuotationHandler) ListQuotations(c *gin.Context) {
	quotations, err := h.usecase.List(c.Request.Context())
	if err != nil {
		respondError(c, mapQuotationError(err))
		return
	}

	page, meta := listing.Apply(quotations, listQuery(c, "status"), func(q entities.Quotation) listing.Fields {
		return listing.Fields{
			Searchable: []string{q.QuotationID, q.CustomerName, q.CustomerMobile},
			Filterable: map[string]string{"status": string(q.Status)},
		}
	})
	c.JSON(http.StatusOK, response.NewListResponse(page, meta))
}

func (h *QuotationHandler) GetQuotation(c *gin.Context) {
	quotation, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapQuotationError(err))
		return
	}
	c.JSON(http.StatusOK, quotation)
}

// PrintQuotation renders the quotation as a standalone HTML document the
// frontend hands to the browser's print dialog.
func (h *QuotationHandler) PrintQuotation(c *gin.Context) {
	quotation, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapQuotationError(err))
		return
	}

	var buf bytes.Buffer
	if err := h.printTpl.Execute(&buf, quotation); err != nil {
		respondError(c, pkg.NewDomainError("INTERNAL_ERROR", "Could not render quotation", err, http.StatusInternalServerError))
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func (h *QuotationHandler) UpdateQuotation(c *gin.Context) {
	var payload request.QuotationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	quotation, err := h.usecase.Update(c.Request.Context(), payload.ToEntity(c.Param("id")))
	if err != nil {
		respondError(c, mapQuotationError(err))
		return
	}
	c.JSON(http.StatusOK, quotation)
}

func (h *QuotationHandler) DeleteQuotation(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, mapQuotationError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapQuotationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuotationID),
		errors.Is(err, usecase.ErrInvalidQuotationInput),
		errors.Is(err, usecase.ErrInvalidQuotationStatus):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuotationNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Quotation not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
