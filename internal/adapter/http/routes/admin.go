package routes

import (
	"clicknova_admin/internal/adapter/http/handlers"
	"clicknova_admin/internal/adapter/http/middleware"
	"clicknova_admin/internal/usecase"

	"github.com/gin-gonic/gin"
)

func addAuthRoutes(rg *gin.RouterGroup, h *handlers.AuthHandler, authUC usecase.IAuthUseCase) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/login", h.Login)
		authGroup.POST("/logout", middleware.RequireAuth(authUC), h.Logout)
		authGroup.GET("/me", middleware.RequireAuth(authUC), h.Me)
	}
}

func addLeadRoutes(rg *gin.RouterGroup, h *handlers.LeadHandler) {
	leads := rg.Group("/leads")
	{
		leads.POST("", h.CreateLead)
		leads.GET("", h.ListLeads)
		leads.GET("/:id", h.GetLead)
		leads.PUT("/:id", h.UpdateLead)
		leads.DELETE("/:id", h.DeleteLead)
	}
}

func addCustomerRoutes(rg *gin.RouterGroup, h *handlers.CustomerHandler) {
	customers := rg.Group("/customers")
	{
		customers.POST("", h.CreateCustomer)
		customers.GET("", h.ListCustomers)
		customers.GET("/:id", h.GetCustomer)
		customers.GET("/:id/detail", h.GetCustomerDetail)
		customers.PUT("/:id", h.UpdateCustomer)
		customers.DELETE("/:id", h.DeleteCustomer)
	}

	services := rg.Group("/customer-services")
	{
		services.POST("", h.CreateService)
		services.GET("", h.ListServices)
		services.PUT("/:id", h.UpdateService)
		services.DELETE("/:id", h.DeleteService)
	}

	payments := rg.Group("/customer-payments")
	{
		payments.POST("", h.CreatePayment)
		payments.PUT("/:id", h.UpdatePayment)
		payments.DELETE("/:id", h.DeletePayment)
	}
}

func addEmployeeRoutes(rg *gin.RouterGroup, h *handlers.EmployeeHandler) {
	employees := rg.Group("/employees")
	{
		employees.POST("", h.CreateEmployee)
		employees.GET("", h.ListEmployees)
		employees.GET("/:id", h.GetEmployee)
		employees.GET("/:id/detail", h.GetEmployeeDetail)
		employees.GET("/:id/target", h.GetEmployeeTarget)
		employees.PUT("/:id", h.UpdateEmployee)
		employees.DELETE("/:id", h.DeleteEmployee)
	}

	businesses := rg.Group("/businesses")
	{
		businesses.POST("", h.CreateBusiness)
		businesses.GET("", h.ListBusinesses)
		businesses.PUT("/:id", h.UpdateBusiness)
		businesses.DELETE("/:id", h.DeleteBusiness)
	}
}

func addQuotationRoutes(rg *gin.RouterGroup, h *handlers.QuotationHandler) {
	quotations := rg.Group("/quotations")
	{
		quotations.POST("", h.CreateQuotation)
		quotations.GET("", h.ListQuotations)
		quotations.GET("/:id", h.GetQuotation)
		quotations.GET("/:id/print", h.PrintQuotation)
		quotations.PUT("/:id", h.UpdateQuotation)
		quotations.DELETE("/:id", h.DeleteQuotation)
	}
}

func addCareerRoutes(rg *gin.RouterGroup, h *handlers.CareerHandler) {
	careers := rg.Group("/career-requests")
	{
		careers.POST("", h.CreateCareerRequest)
		careers.GET("", h.ListCareerRequests)
		careers.GET("/roles", h.ListCareerRoles)
		careers.GET("/:id", h.GetCareerRequest)
		careers.PUT("/:id", h.UpdateCareerRequest)
		careers.DELETE("/:id", h.DeleteCareerRequest)
	}
}

// The website inboxes are read/triage only; the public site is the producer.
func addWebsiteRoutes(rg *gin.RouterGroup, h *handlers.WebsiteHandler) {
	website := rg.Group("/website")

	careers := website.Group("/careers")
	{
		careers.GET("", h.ListCareerSubmissions)
		careers.GET("/:id", h.GetCareerSubmission)
		careers.PUT("/:id", h.UpdateCareerSubmission)
		careers.DELETE("/:id", h.DeleteCareerSubmission)
	}

	contacts := website.Group("/contacts")
	{
		contacts.GET("", h.ListContactSubmissions)
		contacts.GET("/:id", h.GetContactSubmission)
		contacts.PUT("/:id", h.UpdateContactSubmission)
		contacts.DELETE("/:id", h.DeleteContactSubmission)
	}

	freeQuotes := website.Group("/free-quotes")
	{
		freeQuotes.GET("", h.ListFreeQuoteSubmissions)
		freeQuotes.GET("/:id", h.GetFreeQuoteSubmission)
		freeQuotes.PUT("/:id", h.UpdateFreeQuoteSubmission)
		freeQuotes.DELETE("/:id", h.DeleteFreeQuoteSubmission)
	}
}

func addCatalogRoutes(rg *gin.RouterGroup, h *handlers.CatalogHandler) {
	services := rg.Group("/services")
	{
		services.POST("", h.CreateCatalogService)
		services.GET("", h.ListCatalogServices)
		services.GET("/:id", h.GetCatalogService)
		services.PUT("/:id", h.UpdateCatalogService)
		services.DELETE("/:id", h.DeleteCatalogService)
	}
}

func addDashboardRoutes(rg *gin.RouterGroup, h *handlers.DashboardHandler) {
	rg.GET("/dashboard/stats", h.GetStats)
}

func addUploadRoutes(rg *gin.RouterGroup, h *handlers.UploadHandler) {
	rg.POST("/uploads", h.Upload)
}

func addStreamRoutes(rg *gin.RouterGroup, h *handlers.StreamHandler) {
	streams := rg.Group("/streams")
	{
		streams.GET("", h.ListCollections)
		streams.GET("/:collection", h.Subscribe)
	}
}
