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

type CustomerHandler struct {
	usecase usecase.ICustomerUseCase
}

func NewCustomerHandler(uc usecase.ICustomerUseCase) *CustomerHandler {
	return &CustomerHandler{usecase: uc}
}

func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var payload request.CustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	customer, err := h.usecase.Create(c.Request.Context(), payload.ToEntity(""))
	if err != nil {
		respondError(c, mapCustomerError(err))
		return
	}
	c.JSON(http.StatusCreated, customer)
}

func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	customers, err := h.usecase.List(c.Request.Context())
	if err != nil {
		respondError(c, mapCustomerError(err))
		return
	}

	page, meta := listing.Apply(customers, listQuery(c), func(cust entities.Customer) listing.Fields {
		return listing.Fields{Searchable: []string{cust.CustomerName, cust.MobileNumber, cust.Address}}
	})
	c.JSON(http.StatusOK, response.NewListResponse(page, meta))
}

func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	customer, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapCustomerError(err))
		return
	}
	c.JSON(http.StatusOK, customer)
}

// GetCustomerDetail returns the customer with its per-service payment
// ledgers; paid and balance amounts are derived on every read.
func (h *CustomerHandler) GetCustomerDetail(c *gin.Context) {
	detail, err := h.usecase.Detail(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapCustomerError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCustomerDetail(detail))
}

func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	var payload request.CustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	customer, err := h.usecase.Update(c.Request.Context(), payload.ToEntity(c.Param("id")))
	if err != nil {
		respondError(c, mapCustomerError(err))
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, mapCustomerError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CustomerHandler) CreateService(c *gin.Context) {
	var payload request.CustomerServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	service, err := h.usecase.CreateService(c.Request.Context(), payload.ToEntity(""))
	if err != nil {
		respondError(c, mapCustomerError(err))
		return
	}
	c.JSON(http.StatusCreated, service)
}

func (h *CustomerHandler) ListServices(c *gin.Context) {
	services, err := h.usecase.ListServices(c.Request.Context())
	if err != nil {
		respondError(c, mapCustomerError(err))
		return
	}

	page, meta := listing.Apply(services, listQuery(c), func(s entities.CustomerService) listing.Fields {
		return listing.Fields{Searchable: []string{s.ServiceName}}
	})
	c.JSON(http.StatusOK, response.NewListResponse(page, meta))
}

func (h *CustomerHandler) UpdateService(c *gin.Context) {
	var payload request.CustomerServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	service, err := h.usecase.UpdateService(c.Request.Context(), payload.ToEntity(c.Param("id")))
	if err != nil {
		respondError(c, mapCustomerError(err))
		return
	}
	c.JSON(http.StatusOK, service)
}

func (h *CustomerHandler) DeleteService(c *gin.Context) {
	if err := h.usecase.DeleteService(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, mapCustomerError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CustomerHandler) CreatePayment(c *gin.Context) {
	var payload request.CustomerPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	payment, err := h.usecase.CreatePayment(c.Request.Context(), payload.ToEntity(""))
	if err != nil {
		respondError(c, mapCustomerError(err))
		return
	}
	c.JSON(http.StatusCreated, payment)
}

func (h *CustomerHandler) UpdatePayment(c *gin.Context) {
	var payload request.CustomerPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	payment, err := h.usecase.UpdatePayment(c.Request.Context(), payload.ToEntity(c.Param("id")))
	if err != nil {
		respondError(c, mapCustomerError(err))
		return
	}
	c.JSON(http.StatusOK, payment)
}

func (h *CustomerHandler) DeletePayment(c *gin.Context) {
	if err := h.usecase.DeletePayment(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, mapCustomerError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapCustomerError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCustomerID),
		errors.Is(err, usecase.ErrInvalidCustomerInput),
		errors.Is(err, usecase.ErrInvalidServiceID),
		errors.Is(err, usecase.ErrInvalidServiceInput),
		errors.Is(err, usecase.ErrInvalidPaymentID),
		errors.Is(err, usecase.ErrInvalidPaymentAmount),
		errors.Is(err, usecase.ErrInvalidPaymentMethod):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCustomerAlreadyExists):
		return pkg.NewDomainErrorSimple("ALREADY_EXISTS", "A customer with this mobile number already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Customer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Customer service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
