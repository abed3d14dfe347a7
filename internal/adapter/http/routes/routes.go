// Package routes wires the adapters together and owns the router lifecycle.
package routes

import (
	"context"
	"net/http"

	_ "clicknova_admin/docs" // swag-generated swagger spec
	"clicknova_admin/internal/adapter/http/handlers"
	"clicknova_admin/internal/adapter/http/middleware"
	"clicknova_admin/internal/adapter/http/validation"
	"clicknova_admin/internal/adapter/persistence/docstore"
	"clicknova_admin/internal/adapter/persistence/repository"
	"clicknova_admin/internal/adapter/stream"
	"clicknova_admin/internal/auth"
	"clicknova_admin/internal/infrastructure/config"
	"clicknova_admin/internal/infrastructure/database"
	"clicknova_admin/internal/infrastructure/session"
	"clicknova_admin/internal/infrastructure/storage"
	"clicknova_admin/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run builds the dependency graph and serves until the listener fails.
func Run() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("could not load configuration")
	}

	log := newLogger(cfg)
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	ddb, err := database.ConnectDynamoDB(ctx, cfg)
	if err != nil {
		log.WithError(err).Fatal("could not connect to DynamoDB")
	}
	store := docstore.New(ddb, cfg.TablePrefix)

	leadRepo := repository.NewLeadDynamoRepository(store)
	customerRepo := repository.NewCustomerDynamoRepository(store)
	serviceRepo := repository.NewCustomerServiceDynamoRepository(store)
	paymentRepo := repository.NewCustomerPaymentDynamoRepository(store)
	employeeRepo := repository.NewEmployeeDynamoRepository(store)
	businessRepo := repository.NewBusinessDynamoRepository(store)
	quotationRepo := repository.NewQuotationDynamoRepository(store)
	careerRepo := repository.NewCareerRequestDynamoRepository(store)
	webCareerRepo := repository.NewCareerSubmissionDynamoRepository(store)
	webContactRepo := repository.NewContactSubmissionDynamoRepository(store)
	webQuoteRepo := repository.NewFreeQuoteSubmissionDynamoRepository(store)
	catalogRepo := repository.NewCatalogServiceDynamoRepository(store)
	userRepo := repository.NewUserDynamoRepository(store)

	sessions, err := session.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		log.WithError(err).Fatal("could not connect to Redis")
	}
	tokens := auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)

	objectStorage, err := storage.NewGCSClient(ctx, cfg.GCSBucket, cfg.GCSCredentialsJSON)
	if err != nil {
		log.WithError(err).Fatal("could not initialize object storage")
	}

	leadUC := usecase.NewLeadUseCase(leadRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo, serviceRepo, paymentRepo)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo, businessRepo)
	quotationUC := usecase.NewQuotationUseCase(quotationRepo)
	careerUC := usecase.NewCareerRequestUseCase(careerRepo)
	websiteUC := usecase.NewWebsiteUseCase(webCareerRepo, webContactRepo, webQuoteRepo)
	catalogUC := usecase.NewCatalogUseCase(catalogRepo)
	authUC := usecase.NewAuthUseCase(userRepo, tokens, sessions)
	dashboardUC := usecase.NewDashboardUseCase(
		leadRepo, customerRepo, employeeRepo, quotationRepo,
		careerRepo, webCareerRepo, webContactRepo, webQuoteRepo,
	)

	if cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		if err := authUC.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword, cfg.AdminName); err != nil {
			log.WithError(err).Fatal("could not ensure the admin account")
		}
	}

	hub := newStreamHub(cfg, log, leadUC, customerUC, employeeUC, quotationUC, careerUC, websiteUC, catalogUC)
	go hub.Run(ctx)

	router := gin.New()
	router.Use(middleware.RequestLogger(log))
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	if err := validation.Register(); err != nil {
		log.WithError(err).Fatal("could not register request validators")
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, handlers.NewAuthHandler(authUC), authUC)

	protected := v1.Group("")
	protected.Use(middleware.RequireAuth(authUC))
	addLeadRoutes(protected, handlers.NewLeadHandler(leadUC))
	addCustomerRoutes(protected, handlers.NewCustomerHandler(customerUC))
	addEmployeeRoutes(protected, handlers.NewEmployeeHandler(employeeUC))
	addQuotationRoutes(protected, handlers.NewQuotationHandler(quotationUC))
	addCareerRoutes(protected, handlers.NewCareerHandler(careerUC))
	addWebsiteRoutes(protected, handlers.NewWebsiteHandler(websiteUC))
	addCatalogRoutes(protected, handlers.NewCatalogHandler(catalogUC))
	addDashboardRoutes(protected, handlers.NewDashboardHandler(dashboardUC))
	addUploadRoutes(protected, handlers.NewUploadHandler(objectStorage))
	addStreamRoutes(protected, handlers.NewStreamHandler(hub))

	srv := &http.Server{
		Addr:              cfg.AppAddr,
		Handler:           router,
		ReadTimeout:       cfg.AppReadTimeout,
		ReadHeaderTimeout: cfg.AppReadTimeout,
		WriteTimeout:      cfg.AppWriteTimeout,
	}
	if err := srv.ListenAndServe(); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}

func newLogger(cfg *config.Config) *logrus.Logger {
	log := logrus.New()
	if cfg.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}
	return log
}

// newStreamHub registers one full-snapshot feed per live list view.
func newStreamHub(
	cfg *config.Config,
	log *logrus.Logger,
	leads usecase.ILeadUseCase,
	customers usecase.ICustomerUseCase,
	employees usecase.IEmployeeUseCase,
	quotations usecase.IQuotationUseCase,
	careers usecase.ICareerRequestUseCase,
	website usecase.IWebsiteUseCase,
	catalog usecase.ICatalogUseCase,
) *stream.Hub {
	hub := stream.NewHub(cfg.StreamPollInterval, cfg.StreamFetchTimeout, log)
	hub.Register("leads", func(ctx context.Context) (any, error) { return leads.List(ctx) })
	hub.Register("customers", func(ctx context.Context) (any, error) { return customers.List(ctx) })
	hub.Register("customerServices", func(ctx context.Context) (any, error) { return customers.ListServices(ctx) })
	hub.Register("employees", func(ctx context.Context) (any, error) { return employees.List(ctx) })
	hub.Register("quotations", func(ctx context.Context) (any, error) { return quotations.List(ctx) })
	hub.Register("careerRequests", func(ctx context.Context) (any, error) { return careers.List(ctx) })
	hub.Register("websiteCareers", func(ctx context.Context) (any, error) { return website.ListCareerSubmissions(ctx) })
	hub.Register("websiteContacts", func(ctx context.Context) (any, error) { return website.ListContactSubmissions(ctx) })
	hub.Register("websiteFreeQuotes", func(ctx context.Context) (any, error) { return website.ListFreeQuoteSubmissions(ctx) })
	hub.Register("services", func(ctx context.Context) (any, error) { return catalog.List(ctx) })
	return hub
}
