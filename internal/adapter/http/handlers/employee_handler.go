package handlers

import (
	"errors"
	"net/http"
	"time"

	request "clicknova_admin/internal/adapter/http/dto/request"
	response "clicknova_admin/internal/adapter/http/dto/response"
	"clicknova_admin/internal/domain/entities"
	"clicknova_admin/internal/domain/listing"
	"clicknova_admin/internal/usecase"
	"clicknova_admin/pkg"

	"github.com/gin-gonic/gin"
)

const targetDateLayout = "2006-01-02"

type EmployeeHandler struct {
	usecase usecase.IEmployeeUseCase
}

func NewEmployeeHandler(uc usecase.IEmployeeUseCase) *EmployeeHandler {
	return &EmployeeHandler{usecase: uc}
}

// CreateEmployee godoc
// @Summary Create an employee
// @Description Registers an employee and assigns a unique 8-digit employee number
// @Tags employees
// @Accept json
// @Produce json
// @Param employee body request.EmployeeRequest true "Employee payload"
// @Success 201 {object} entities.Employee
// @Failure 400 {object} pkg.AppError
// @Router /v1/employees [post]
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var payload request.EmployeeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	employee, err := h.usecase.Create(c.Request.Context(), payload.ToEntity(""))
	if err != nil {
		respondError(c, mapEmployeeError(err))
		return
	}
	c.JSON(http.StatusCreated, employee)
}

func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	employees, err := h.usecase.List(c.Request.Context())
	if err != nil {
		respondError(c, mapEmployeeError(err))
		return
	}

	page, meta := listing.Apply(employees, listQuery(c, "status"), func(e entities.Employee) listing.Fields {
		return listing.Fields{
			Searchable: []string{e.EmployeeName, e.MobileNumber, e.EmployeeID, e.Role},
			Filterable: map[string]string{"status": string(e.Status)},
		}
	})
	c.JSON(http.StatusOK, response.NewListResponse(page, meta))
}

func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	employee, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapEmployeeError(err))
		return
	}
	c.JSON(http.StatusOK, employee)
}

func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	var payload request.EmployeeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	employee, err := h.usecase.Update(c.Request.Context(), payload.ToEntity(c.Param("id")))
	if err != nil {
		respondError(c, mapEmployeeError(err))
		return
	}
	c.JSON(http.StatusOK, employee)
}

func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, mapEmployeeError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// GetEmployeeDetail returns the employee with its business entries.
func (h *EmployeeHandler) GetEmployeeDetail(c *gin.Context) {
	employee, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapEmployeeError(err))
		return
	}
	businesses, err := h.usecase.ListBusinesses(c.Request.Context(), employee.ID)
	if err != nil {
		respondError(c, mapEmployeeError(err))
		return
	}
	if businesses == nil {
		businesses = []entities.Business{}
	}
	c.JSON(http.StatusOK, response.EmployeeDetailResponse{Employee: employee, Businesses: businesses})
}

// GetEmployeeTarget godoc
// @Summary Employee target view
// @Description Sums the business an employee generated inside the requested window
// @Tags employees
// @Produce json
// @Param id path string true "Employee id"
// @Param range query string false "all | thisMonth | lastMonth | thisYear | lastYear | custom" default(all)
// @Param from query string false "Window start (2006-01-02), custom range only"
// @Param to query string false "Window end (2006-01-02), custom range only"
// @Success 200 {object} response.EmployeeTargetResponse
// @Failure 400 {object} pkg.AppError
// @Router /v1/employees/{id}/target [get]
func (h *EmployeeHandler) GetEmployeeTarget(c *gin.Context) {
	r := usecase.TargetRange(c.DefaultQuery("range", string(usecase.TargetRangeAll)))

	var from, to time.Time
	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse(targetDateLayout, raw)
		if err != nil {
			respondError(c, pkg.NewDomainErrorSimple("VALIDATION_ERROR", "from must be formatted as 2006-01-02", http.StatusBadRequest))
			return
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse(targetDateLayout, raw)
		if err != nil {
			respondError(c, pkg.NewDomainErrorSimple("VALIDATION_ERROR", "to must be formatted as 2006-01-02", http.StatusBadRequest))
			return
		}
		to = parsed
	}

	target, err := h.usecase.Target(c.Request.Context(), c.Param("id"), r, from, to)
	if err != nil {
		respondError(c, mapEmployeeError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEmployeeTarget(target))
}

func (h *EmployeeHandler) CreateBusiness(c *gin.Context) {
	var payload request.BusinessRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	business, err := h.usecase.CreateBusiness(c.Request.Context(), payload.ToEntity(""))
	if err != nil {
		respondError(c, mapEmployeeError(err))
		return
	}
	c.JSON(http.StatusCreated, business)
}

func (h *EmployeeHandler) ListBusinesses(c *gin.Context) {
	businesses, err := h.usecase.ListBusinesses(c.Request.Context(), c.Query("employeeId"))
	if err != nil {
		respondError(c, mapEmployeeError(err))
		return
	}

	page, meta := listing.Apply(businesses, listQuery(c), func(b entities.Business) listing.Fields {
		return listing.Fields{Searchable: []string{b.BusinessName}}
	})
	c.JSON(http.StatusOK, response.NewListResponse(page, meta))
}

func (h *EmployeeHandler) UpdateBusiness(c *gin.Context) {
	var payload request.BusinessRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	business, err := h.usecase.UpdateBusiness(c.Request.Context(), payload.ToEntity(c.Param("id")))
	if err != nil {
		respondError(c, mapEmployeeError(err))
		return
	}
	c.JSON(http.StatusOK, business)
}

func (h *EmployeeHandler) DeleteBusiness(c *gin.Context) {
	if err := h.usecase.DeleteBusiness(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, mapEmployeeError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapEmployeeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEmployeeID),
		errors.Is(err, usecase.ErrInvalidEmployeeInput),
		errors.Is(err, usecase.ErrInvalidEmployeeStatus),
		errors.Is(err, usecase.ErrInvalidBusinessID),
		errors.Is(err, usecase.ErrInvalidBusinessInput),
		errors.Is(err, usecase.ErrInvalidTargetRange):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmployeeNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Employee not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBusinessNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Business entry not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
